package source

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// normalize prepares raw input for the byte-oriented lexer.
// Full-width digits and operators ("２ｄ６＋１") fold to ASCII under NFKC,
// so the lexer never has to look past a single byte.
func normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if bytes.HasPrefix(content, bom) {
		content = content[len(bom):]
		flags |= FileHadBOM
	}
	if norm.NFKC.IsNormal(content) {
		return content, flags
	}
	return norm.NFKC.Bytes(content), flags | FileNormalized
}
