package screener

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped word list files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based word list loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "wordlist-loader").Logger(),
	}
}

// Load reads a gzipped word list file and returns a WordSet.
// The file is expected to contain one word per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) (WordSet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading word list")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open word list")
		return nil, fmt.Errorf("failed to open word list %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	set := NewMapWordSet(4096).(*mapWordSet)

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				l.logger.Warn().Str("file", filePath).Msg("word list loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line != "" {
			set.Add(line)
			lineCount++
		}
	}

	if err := scanner.Err(); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading word list")
		return nil, fmt.Errorf("error reading word list %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("words_loaded", set.Size()).
		Msg("word list loaded successfully")

	return set, nil
}
