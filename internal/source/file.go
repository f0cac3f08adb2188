package source

import (
	"fmt"

	"fortio.org/safecast"
)

type FileID uint32

type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalized
)

// File is one dice expression as handed to the lexer.
// Content is already normalised; Original keeps the bytes as received.
type File struct {
	ID       FileID
	Name     string
	Content  []byte
	Original []byte
	Flags    FileFlags
}

// Len returns the content length as a span offset.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return n
}

// Text returns the source text covered by sp, clamped to the content.
func (f *File) Text(sp Span) string {
	n := f.Len()
	start, end := sp.Start, sp.End
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return string(f.Content[start:end])
}

// FileSet owns every input evaluated within one run.
// Ids are 1-based in allocation order.
type FileSet struct {
	files []*File
}

func NewFileSet() *FileSet {
	return &FileSet{files: make([]*File, 0, 4)}
}

// AddVirtual registers an expression that did not come from disk
// (command line argument, stdin line, test input).
func (fs *FileSet) AddVirtual(name, text string) FileID {
	orig := []byte(text)
	content, flags := normalize(orig)
	flags |= FileVirtual

	n, err := safecast.Conv[uint32](len(fs.files) + 1)
	if err != nil {
		panic(fmt.Errorf("file id overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, &File{
		ID:       id,
		Name:     name,
		Content:  content,
		Original: orig,
		Flags:    flags,
	})
	return id
}

// Get returns the file for id; it panics on an id this set did not allocate.
func (fs *FileSet) Get(id FileID) *File {
	if id == 0 || int(id) > len(fs.files) {
		panic(fmt.Sprintf("source: file id %d out of range", id))
	}
	return fs.files[id-1]
}

func (fs *FileSet) Len() int {
	return len(fs.files)
}
