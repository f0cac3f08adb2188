package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"diceroll/internal/rollfmt"
)

func TestMain(m *testing.M) {
	registerCommands()
	os.Exit(m.Run())
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRollJSON(t *testing.T) {
	out, _, err := execute(t, "", "roll", "--color", "off", "--seed", "7", "--format", "json", "1d6 + 2", "4d6kh3")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	var snaps []rollfmt.Snapshot
	if err := json.Unmarshal([]byte(out), &snaps); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots", len(snaps))
	}
	if snaps[0].Seed != 7 || snaps[1].Seed != 8 {
		t.Fatalf("seeds = %d, %d", snaps[0].Seed, snaps[1].Seed)
	}
	if total := snaps[0].Total; total == nil || *total < 3 || *total > 8 {
		t.Fatalf("1d6 + 2 total out of range: %v", total)
	}
	if total := snaps[1].Total; total == nil || *total < 3 || *total > 18 {
		t.Fatalf("4d6kh3 total out of range: %v", total)
	}
}

func TestRollSameSeedSameOutput(t *testing.T) {
	first, _, err := execute(t, "", "roll", "--color", "off", "--seed", "99", "--format", "pretty", "3d20e20 - 1d4")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := execute(t, "", "roll", "--color", "off", "--seed", "99", "--format", "pretty", "3d20e20 - 1d4")
	if err != nil {
		t.Fatal(err)
	}
	if first != second || !strings.HasPrefix(first, "3d20e20 (") {
		t.Fatalf("outputs differ or malformed:\n%s\n%s", first, second)
	}
}

func TestRollFromStdin(t *testing.T) {
	out, _, err := execute(t, "1 + 1\n\n2 * 3\n", "roll", "--color", "off", "--format", "pretty", "-")
	if err != nil {
		t.Fatal(err)
	}
	want := "1 + 1: 1 + 1 = 2\n2 * 3: 2 * 3 = 6\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRollFailure(t *testing.T) {
	out, errOut, err := execute(t, "", "roll", "--color", "off", "--format", "pretty", "1 / 0")
	if !errors.Is(err, errRollFailed) {
		t.Fatalf("err = %v, want errRollFailed", err)
	}
	if !strings.Contains(out, "error") {
		t.Fatalf("stdout should carry the error line: %q", out)
	}
	if !strings.Contains(errOut, "EVL4001") {
		t.Fatalf("stderr should carry the diagnostic: %q", errOut)
	}
}

func TestRollDefaultDiceLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	out, errOut, err := execute(t, "", "roll", "--color", "off", "--format", "pretty", "100001d6")
	if !errors.Is(err, errRollFailed) {
		t.Fatalf("err = %v, want errRollFailed", err)
	}
	if !strings.Contains(errOut, "EVL4009") {
		t.Fatalf("stderr should report too many dice: %q", errOut)
	}
	if !strings.HasPrefix(out, "error: ") {
		t.Fatalf("want an error line instead of a total: %q", out)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	out, _, err := execute(t, "", "tokenize", "--format", "json", "2d6kh1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"text": "2d6"`) {
		t.Fatalf("unexpected tokens: %s", out)
	}

	out, _, err = execute(t, "", "parse", "--format", "tree", "1d20 - 2")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Binary - @0..8\n  Dice 1d20 @0..4\n  Literal 2 @7..8\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	if _, _, err := execute(t, "", "parse", "--format", "tree", "1 +"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json", "--color", "off")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "diceroll" || payload.Version == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestReadExpressions(t *testing.T) {
	got, err := readExpressions(strings.NewReader("  d20 \n\n\t3d6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, "|") != "d20|3d6" {
		t.Fatalf("got %q", got)
	}
}
