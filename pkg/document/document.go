// Package document turns an uploaded design document into plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxSize is the upload limit used when none is configured.
const DefaultMaxSize int64 = 10 << 20

const (
	mimeTextPlain = "text/plain"
	mimeZip       = "application/zip"
	mimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrEmptyDocument   = errors.New("document has no readable text")
)

// Document is the text content of an upload.
type Document struct {
	Name string
	MIME string
	Size int64
	Text string
}

// Validate checks what is known before the body is read.
func Validate(name string, size, limit int64) error {
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	if size > limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, size, limit)
	}
	if _, ok := readers[extension(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, filepath.Ext(name))
	}
	return nil
}

// Read reads at most limit bytes from r and extracts the document text.
func Read(name string, r io.Reader, limit int64) (Document, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	read, ok := readers[extension(name)]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedType, filepath.Ext(name))
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Document{}, fmt.Errorf("document.Read: %w", err)
	}
	if int64(len(data)) > limit {
		return Document{}, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
	}

	mtype := mimetype.Detect(data)
	text, err := read(data, mtype)
	if err != nil {
		return Document{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Document{}, ErrEmptyDocument
	}

	return Document{
		Name: name,
		MIME: mtype.String(),
		Size: int64(len(data)),
		Text: text,
	}, nil
}

type readerFunc func(data []byte, mtype *mimetype.MIME) (string, error)

var readers = map[string]readerFunc{
	".txt":      readText,
	".md":       readText,
	".markdown": readText,
	".docx":     readDocx,
}

func extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func readText(data []byte, mtype *mimetype.MIME) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptyDocument
	}
	if !isA(mtype, mimeTextPlain) || !utf8.Valid(data) {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedType, mtype.String())
	}
	return string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
}

func readDocx(data []byte, mtype *mimetype.MIME) (string, error) {
	if !isA(mtype, mimeDocx) && !isA(mtype, mimeZip) {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedType, mtype.String())
	}
	return docxText(data)
}

// isA reports whether mtype or one of its parents is want.
func isA(mtype *mimetype.MIME, want string) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(want) {
			return true
		}
	}
	return false
}
