package screener

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Screener decides whether free-text names contain disallowed content.
// Product and menu names pass through it before anything is persisted.
type Screener interface {
	// ContainsDisallowedContent reports whether text contains a word from
	// any loaded word list. A screening failure surfaces as an error and
	// must never be treated as "clean".
	ContainsDisallowedContent(ctx context.Context, text string) (bool, error)
}

// WordSet represents one loaded list of disallowed words.
type WordSet interface {
	// Contains checks if a word exists in the set.
	Contains(word string) bool

	// Size returns the number of words in the set.
	Size() int
}

// Loader defines the interface for loading word list files.
type Loader interface {
	// Load reads a gzipped word list file and returns a WordSet.
	Load(ctx context.Context, filePath string) (WordSet, error)
}

// Config holds configuration for the word list screener.
type Config struct {
	// FilePaths is the list of word list files to load.
	FilePaths []string
}

// DefaultConfig returns the default screener configuration.
func DefaultConfig() *Config {
	return &Config{
		FilePaths: []string{
			"data/wordlists/profanity.gz",
		},
	}
}

// wordListScreener implements Screener against word lists loaded once at
// startup. Sets are read-only afterwards, so lookups need no locking.
type wordListScreener struct {
	wordSets []WordSet
	logger   zerolog.Logger
}

// New creates a screener, loading all configured word lists concurrently.
func New(ctx context.Context, config *Config, loader Loader, logger zerolog.Logger) (Screener, error) {
	if config == nil {
		config = DefaultConfig()
	}

	logger = logger.With().Str("component", "name-screener").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("initialising name screener")

	type loadResult struct {
		index int
		set   WordSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				set:   set,
				err:   err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	sets := make([]WordSet, len(config.FilePaths))
	for result := range resultChan {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[result.index]).
				Msg("failed to load word list")
			return nil, result.err
		}
		sets[result.index] = result.set
	}

	total := 0
	for _, set := range sets {
		total += set.Size()
	}
	logger.Info().
		Int("word_count", total).
		Msg("name screener initialised")

	return &wordListScreener{
		wordSets: sets,
		logger:   logger,
	}, nil
}

// ContainsDisallowedContent normalises the text to lower-case tokens and
// flags it when any token appears in any word set.
func (s *wordListScreener) ContainsDisallowedContent(ctx context.Context, text string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	for _, token := range strings.Fields(strings.ToLower(text)) {
		for _, set := range s.wordSets {
			if set.Contains(token) {
				s.logger.Debug().Msg("name flagged by screener")
				return true, nil
			}
		}
	}
	return false, nil
}
