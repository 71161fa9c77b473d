// Command doc2vec-tokenize splits a corpus into sentences and words, writing
// one sentence per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kavorite/doc2vec/cli"
	"github.com/kavorite/doc2vec/corpus"
	"github.com/kavorite/doc2vec/fileselect"
	"github.com/kavorite/doc2vec/tokenize"
)

func main() {
	var (
		lang, encoding      string
		keepCase, keepDiacr bool
		inputDir, outputDir string
		wanted, unwanted    cli.Strings
	)
	flag.StringVar(&lang, "lang", "", "language used by word and sentence tokenizer, e.g. english or portuguese")
	flag.BoolVar(&keepCase, "keep-case", false, "don't convert text to lowercase before tokenizing")
	flag.BoolVar(&keepDiacr, "keep-diacritics", false, "don't remove diacritics (e.g. ` ´ ~ ^) before tokenizing")
	flag.StringVar(&encoding, "encoding", corpus.DefaultEncoding, "document file encoding. Default is utf-8, but some datasets need latin-1")
	flag.StringVar(&inputDir, "input-directory", "", "directory containing the corpus")
	flag.StringVar(&outputDir, "output-directory", "", "directory to store tokenized corpus")
	flag.Var(&wanted, "wanted-extensions", "if specified, only process files with these extensions (comma separated)")
	flag.Var(&unwanted, "unwanted-extensions", "if specified, ignore files with these extensions (comma separated)")
	flag.Parse()

	log := cli.Logger()
	if lang == "" || inputDir == "" || outputDir == "" {
		fmt.Fprintf(os.Stderr, "please provide -lang, -input-directory and -output-directory\n")
		flag.Usage()
		os.Exit(cli.ExitConfig)
	}

	enc, err := corpus.Encoding(encoding)
	if err != nil {
		cli.Exit(log, err)
	}
	tok, err := tokenize.NewPunkt(lang)
	if err != nil {
		cli.Exit(log, err)
	}
	files, err := fileselect.Select(inputDir, fileselect.Filter{Wanted: wanted, Unwanted: unwanted})
	if err != nil {
		cli.Exit(log, err)
	}
	log.Info().Str("lang", tok.Language()).Msg("loaded sentence tokenizer")

	var progress func(float64)
	if pbar := cli.Pbar(); pbar != nil {
		progress = pbar("Tokenize")
	}
	stage := tokenize.NewStage(tok, tokenize.Options{
		KeepCase:       keepCase,
		KeepDiacritics: keepDiacr,
		Encoding:       enc,
	}, log)
	stage.Run(inputDir, outputDir, files, progress)
}
