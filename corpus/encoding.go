package corpus

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/kavorite/doc2vec/errs"
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

// aliases the WHATWG and IANA tables do not know under these spellings
var aliases = map[string]string{
	"latin-1": "iso-8859-1",
	"latin_1": "iso-8859-1",
	"utf_8":   "utf-8",
	"utf8":    "utf-8",
}

// Encoding resolves a text encoding by name, e.g. "utf-8" or "latin-1".
func Encoding(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultEncoding
	}
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if name == "utf-8" {
		return unicode.UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, errs.Configf("unknown encoding %q", name)
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == nil || enc == unicode.UTF8
}
