package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/kavorite/doc2vec/errs"
)

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func collect(t *testing.T, c *Corpus) []Document {
	t.Helper()
	var docs []Document
	if err := c.Each(func(d Document) error {
		docs = append(docs, d)
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}
	return docs
}

func TestWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a b\nc", []string{"a", "b", "c"}},
		{"a b\n\nc d\n", []string{"a", "b", "c", "d"}},
		{"", nil},
		{"\n\n", nil},
		{"x  y", []string{"x", "y"}},
		{"one\r\ntwo", []string{"one", "two"}},
	}
	for _, tc := range cases {
		if got := Words(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Words(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEachRestartable(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.txt", []byte("the cat sat\non the mat\n"))
	b := write(t, dir, "b.txt", []byte("a dog\n\nbarked"))
	c := New([]string{a, b}, nil)

	first := collect(t, c)
	second := collect(t, c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("passes differ: %v vs %v", first, second)
	}
	want := []Document{
		{Tag: a, Words: []string{"the", "cat", "sat", "on", "the", "mat"}},
		{Tag: b, Words: []string{"a", "dog", "barked"}},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("documents = %v, want %v", first, want)
	}
}

func TestEachLazyFailure(t *testing.T) {
	dir := t.TempDir()
	good := write(t, dir, "good.txt", []byte("fine words"))
	bad := write(t, dir, "bad.txt", []byte{0xff, 0xfe, 'x'})
	c := New([]string{good, bad}, nil)

	var seen []string
	err := c.Each(func(d Document) error {
		seen = append(seen, d.Tag)
		return nil
	})
	var accessErr *errs.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("err = %v, want *errs.FileAccessError", err)
	}
	if accessErr.Path != bad {
		t.Errorf("failing path = %s, want %s", accessErr.Path, bad)
	}
	if len(seen) != 1 || seen[0] != good {
		t.Errorf("documents before failure = %v, want [%s]", seen, good)
	}
}

func TestEachMissingFile(t *testing.T) {
	c := New([]string{filepath.Join(t.TempDir(), "nope.txt")}, nil)
	err := c.Each(func(Document) error { return nil })
	var accessErr *errs.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("err = %v, want *errs.FileAccessError", err)
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a", []byte("x"))
	b := write(t, dir, "b", []byte("y"))
	stop := errors.New("stop")
	n := 0
	err := New([]string{a, b}, nil).Each(func(Document) error {
		n++
		return stop
	})
	if err != stop || n != 1 {
		t.Errorf("err = %v after %d calls, want stop after 1", err, n)
	}
}

func TestLatin1(t *testing.T) {
	enc, err := Encoding("latin-1")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("são paulo"))
	if err != nil {
		t.Fatal(err)
	}
	p := write(t, t.TempDir(), "l1.txt", raw)
	docs := collect(t, New([]string{p}, enc))
	if want := []string{"são", "paulo"}; !reflect.DeepEqual(docs[0].Words, want) {
		t.Errorf("words = %q, want %q", docs[0].Words, want)
	}
}

func TestEncodingUnknown(t *testing.T) {
	_, err := Encoding("klingon-7")
	var cfgErr *errs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *errs.ConfigError", err)
	}
}
