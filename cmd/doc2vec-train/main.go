// Command doc2vec-train trains a doc2vec model from a tokenized corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kavorite/doc2vec/cli"
	"github.com/kavorite/doc2vec/config"
	"github.com/kavorite/doc2vec/errs"
	"github.com/kavorite/doc2vec/fileselect"
	"github.com/kavorite/doc2vec/pipeline"
	"github.com/kavorite/doc2vec/word2vec"
)

func main() {
	var (
		cfgPath, saveCfg         string
		dm                       bool
		workers, epochs, window  int
		minCount, vectorSize     int
		intersect, intersectFmt  string
		existOK, noCSV, wordVecs bool
		encoding, sqlitePath     string
		inputDir, outputDir      string
		wanted, unwanted         cli.Strings
	)
	def := config.Default()
	flag.StringVar(&cfgPath, "config", "", "optional YAML file with model settings; flags override it")
	flag.StringVar(&saveCfg, "save-config", "", "write the effective settings to this YAML file")
	flag.BoolVar(&dm, "dm", false, "use DM training algorithm instead of DBOW")
	flag.IntVar(&workers, "workers", def.Model.Workers, "use these many worker goroutines to train the model. Default: cpu count")
	flag.IntVar(&epochs, "epochs", 0, "number of iterations through the corpus (required)")
	flag.IntVar(&window, "window", 0, "the maximum distance between the current and predicted word within a sentence (required)")
	flag.IntVar(&minCount, "min-count", 0, "ignores all words with total frequency lower than this (required)")
	flag.IntVar(&vectorSize, "vector-size", 0, "dimensionality of the feature vectors (required)")
	flag.StringVar(&intersect, "intersect", "", "initialize word weights using this word2vec model")
	flag.StringVar(&intersectFmt, "intersect-format", def.IntersectFormat, "format of the -intersect file: auto (.bin means binary), bin or text")
	flag.BoolVar(&existOK, "exist-ok", false, "do not throw an error if output-directory is already populated")
	flag.StringVar(&encoding, "encoding", def.Encoding, "document file encoding. Default is utf-8, but some datasets need latin-1")
	flag.BoolVar(&noCSV, "no-csv", false, "do not create csv with embeddings")
	flag.BoolVar(&wordVecs, "save-word-vectors", false, "also save the word vectors in binary word2vec format")
	flag.StringVar(&sqlitePath, "sqlite", "", "also store the document vectors in this SQLite database")
	flag.StringVar(&inputDir, "input-directory", "", "directory containing the corpus")
	flag.StringVar(&outputDir, "output-directory", "", "directory to store output (model, embeddings, and parameters)")
	flag.Var(&wanted, "wanted-extensions", "if specified, only process files with these extensions (comma separated)")
	flag.Var(&unwanted, "unwanted-extensions", "if specified, ignore files with these extensions (comma separated)")
	flag.Parse()

	log := cli.Logger()
	if inputDir == "" || outputDir == "" {
		fmt.Fprintf(os.Stderr, "please provide -input-directory and -output-directory\n")
		flag.Usage()
		os.Exit(cli.ExitConfig)
	}

	cfg := def
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			cli.Exit(log, errs.Configf("load %s: %v", cfgPath, err))
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dm":
			cfg.Model.DM = dm
		case "workers":
			cfg.Model.Workers = workers
		case "epochs":
			cfg.Model.Epochs = epochs
		case "window":
			cfg.Model.Window = window
		case "min-count":
			cfg.Model.MinCount = minCount
		case "vector-size":
			cfg.Model.VectorSize = vectorSize
		case "intersect":
			cfg.Intersect = intersect
		case "intersect-format":
			cfg.IntersectFormat = intersectFmt
		case "encoding":
			cfg.Encoding = encoding
		case "wanted-extensions":
			cfg.WantedExtensions = wanted
		case "unwanted-extensions":
			cfg.UnwantedExtensions = unwanted
		}
	})
	if err := cfg.Validate(); err != nil {
		cli.Exit(log, err)
	}
	if saveCfg != "" {
		if err := config.Save(saveCfg, cfg); err != nil {
			cli.Exit(log, &errs.FileAccessError{Path: saveCfg, Err: err})
		}
	}
	format, err := word2vec.ParseFormat(cfg.IntersectFormat)
	if err != nil {
		cli.Exit(log, errs.Configf("%v", err))
	}

	_, err = pipeline.Train(context.Background(), pipeline.TrainOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Filter: fileselect.Filter{
			Wanted:   cfg.WantedExtensions,
			Unwanted: cfg.UnwantedExtensions,
		},
		Encoding:        cfg.Encoding,
		Model:           cfg.Model,
		Intersect:       cfg.Intersect,
		IntersectFormat: format,
		ExistOK:         existOK,
		NoCSV:           noCSV,
		SaveWordVectors: wordVecs,
		SQLite:          sqlitePath,
	}, log, cli.Pbar())
	cli.Exit(log, err)
}
