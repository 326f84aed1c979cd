package application

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/content"
	"github.com/eugenenazirov/minigrep/internal/search"
)

// ErrIO wraps every failure to read the target file or write the results.
var ErrIO = errors.New("i/o failure")

// App runs a single search described by a config.Config.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	reader   content.Reader
	searcher search.Searcher
	out      io.Writer
}

// Option configures App behaviour.
type Option func(*App)

// WithOutput overrides the destination of matching lines (standard output by default).
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithReader overrides the content source, primarily for tests.
func WithReader(r content.Reader) Option {
	return func(a *App) {
		a.reader = r
	}
}

// New initializes the application from the resolved configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		logger:   logger,
		reader:   content.NewFileReader(),
		searcher: search.New(cfg.CaseSensitive),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run reads the configured file, searches it and writes each matching line to
// the output. Zero matches is not an error.
func (a *App) Run() error {
	logger := a.logger.With(
		zap.String("file", a.cfg.Filename),
		zap.Bool("case_sensitive", a.cfg.CaseSensitive),
	)

	text, err := a.reader.Read(a.cfg.Filename)
	if err != nil {
		logger.Debug("read failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	matches := a.searcher.Search(a.cfg.Query, text)
	logger.Debug("search completed", zap.Int("matches", len(matches)))

	if err := writeLines(a.out, matches); err != nil {
		return fmt.Errorf("%w: write results: %w", ErrIO, err)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}
