// Command doc2vec-infer infers embeddings for a set of tokenized documents
// using a trained doc2vec model.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kavorite/doc2vec/cli"
	"github.com/kavorite/doc2vec/corpus"
	"github.com/kavorite/doc2vec/fileselect"
	"github.com/kavorite/doc2vec/pipeline"
)

func main() {
	var (
		opts             pipeline.InferOptions
		wanted, unwanted cli.Strings
	)
	flag.IntVar(&opts.Steps, "steps", 0, "number of iterations for each document")
	flag.StringVar(&opts.Model, "model", "", "filename of trained doc2vec model")
	flag.StringVar(&opts.InputDir, "input-directory", "", "directory containing the tokenized documents")
	flag.StringVar(&opts.Output, "output", "", "filename for result embeddings, in CSV format")
	flag.StringVar(&opts.Encoding, "encoding", corpus.DefaultEncoding, "document file encoding. Default is utf-8, but some datasets need latin-1")
	flag.StringVar(&opts.SQLite, "sqlite", "", "also store the embeddings in this SQLite database")
	flag.Var(&wanted, "wanted-extensions", "if specified, only process files with these extensions (comma separated)")
	flag.Var(&unwanted, "unwanted-extensions", "if specified, ignore files with these extensions (comma separated)")
	flag.Parse()

	log := cli.Logger()
	if opts.Model == "" || opts.InputDir == "" || opts.Output == "" || opts.Steps == 0 {
		fmt.Fprintf(os.Stderr, "please provide -steps, -model, -input-directory and -output\n")
		flag.Usage()
		os.Exit(cli.ExitConfig)
	}
	opts.Filter = fileselect.Filter{Wanted: wanted, Unwanted: unwanted}

	var progress func(float64)
	if pbar := cli.Pbar(); pbar != nil {
		progress = pbar("Infer")
	}
	_, err := pipeline.InferAndSave(context.Background(), opts, log, progress)
	cli.Exit(log, err)
}
