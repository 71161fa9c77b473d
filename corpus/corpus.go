// Package corpus streams tokenized documents from disk one file at a time.
package corpus

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/kavorite/doc2vec/errs"
)

// Document is one tokenized file. Tag is the source path.
type Document struct {
	Tag   string
	Words []string
}

// Corpus is a restartable sequence of documents backed by a fixed list of
// paths. Files are only opened while they are being iterated.
type Corpus struct {
	paths []string
	enc   encoding.Encoding
}

// New returns a corpus over paths decoded with enc. A nil enc means UTF-8.
func New(paths []string, enc encoding.Encoding) *Corpus {
	return &Corpus{paths: append([]string(nil), paths...), enc: enc}
}

// Len is the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.paths)
}

// Each reads the files in order and calls forEach with each document. Every
// call starts a fresh pass from the first file. Iteration stops at the first
// unreadable file or the first error returned by forEach.
func (c *Corpus) Each(forEach func(Document) error) error {
	for _, path := range c.paths {
		doc, err := c.Read(path)
		if err != nil {
			return err
		}
		if err = forEach(doc); err != nil {
			return err
		}
	}
	return nil
}

// Read loads a single document.
func (c *Corpus) Read(path string) (doc Document, err error) {
	text, err := ReadText(path, c.enc)
	if err != nil {
		return
	}
	doc = Document{Tag: path, Words: Words(text)}
	return
}

// Words splits text on newlines and then on single spaces. Empty tokens are
// dropped so blank lines contribute nothing.
func Words(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, w := range strings.Split(line, " ") {
			if w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

// ReadText reads a whole file and decodes it with enc.
func ReadText(path string, enc encoding.Encoding) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &errs.FileAccessError{Path: path, Err: err}
	}
	if isUTF8(enc) {
		if !utf8.Valid(raw) {
			return "", &errs.FileAccessError{Path: path, Err: fmt.Errorf("invalid utf-8")}
		}
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &errs.FileAccessError{Path: path, Err: err}
	}
	return string(decoded), nil
}
