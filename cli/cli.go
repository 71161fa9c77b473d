// Package cli holds the plumbing shared by the doc2vec commands: logging,
// flag types, progress bars and exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/kavorite/doc2vec/errs"
)

// LogLevelEnv selects the log level, e.g. "debug" or "warn".
const LogLevelEnv = "DOC2VEC_LOG_LEVEL"

// Logger loads .env if present and returns a console logger on stderr.
func Logger() zerolog.Logger {
	_ = godotenv.Load()
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv(LogLevelEnv)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// Strings is a flag.Value collecting comma separated or repeated values.
type Strings []string

func (s *Strings) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *Strings) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// Pbar returns a progress reporter factory drawing on stderr, or nil when
// stderr is not a terminal.
func Pbar() func(task string) func(float64) {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}
	return func(task string) func(float64) {
		return pbar(os.Stderr, task)
	}
}

func pbar(w io.Writer, task string) func(float64) {
	const width = 24
	return func(x float64) {
		if x > 1 {
			x = 1
		}
		var bar strings.Builder
		bar.Grow(width + 2)
		bar.WriteByte('[')
		n := int(x * width)
		for i := 1; i <= n; i++ {
			bar.WriteByte('#')
		}
		for i := 1; i <= width-n; i++ {
			bar.WriteByte(' ')
		}
		bar.WriteByte(']')
		fmt.Fprintf(w, "%s: %s %.2f%%\r", task, bar.String(), x*100)
		if x == 1 {
			fmt.Fprintln(w)
		}
	}
}

// Exit codes.
const (
	ExitOK = iota
	ExitFailure
	ExitConfig
	ExitOutputExists
	ExitFileAccess
	ExitModel
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var (
		cfgErr    *errs.ConfigError
		existsErr *errs.OutputExistsError
		accessErr *errs.FileAccessError
		modelErr  *errs.ModelError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.As(err, &existsErr):
		return ExitOutputExists
	case errors.As(err, &accessErr):
		return ExitFileAccess
	case errors.As(err, &modelErr):
		return ExitModel
	}
	return ExitFailure
}

// Exit logs err, if any, and terminates with its exit code.
func Exit(log zerolog.Logger, err error) {
	if err != nil {
		log.Error().Err(err).Msg("aborted")
	}
	os.Exit(ExitCode(err))
}
