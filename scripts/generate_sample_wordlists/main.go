package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Creates sample gzipped word list files for local development. Names
// containing any of these words are rejected by the screener.
func main() {
	dataDir := "data/wordlists"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	wordLists := map[string][]string{
		"profanity.gz": {
			"badword",
			"curse",
			"slur",
			"offensive",
		},
		"reserved.gz": {
			"admin",
			"test",
			"internal",
		},
	}

	for filename, words := range wordLists {
		filePath := filepath.Join(dataDir, filename)

		if err := createWordListFile(filePath, words); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d words\n", filePath, len(words))
	}

	fmt.Println("\nSample word list files created successfully!")
}

func createWordListFile(filePath string, words []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	for _, word := range words {
		if _, err := fmt.Fprintln(gzWriter, word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}

	return nil
}
