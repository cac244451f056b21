package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// GenerateCrawlID generates a unique identifier based on the current timestamp.
// The identifier is formatted as a string in the "YYYYMMDDHHMMSS" format.
func GenerateCrawlID() string {
	currentTime := time.Now()

	return currentTime.Format("20060102150405")
}

// ReadKeysFromFile reads API keys from a file, one per line.
// It ignores empty lines and lines starting with a '#' character (comments).
func ReadKeysFromFile(filename string) ([]string, error) {
	log.Debug().Str("filename", filename).Msg("Reading API keys from file")

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	var keys []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			keys = append(keys, line)
		}
	}

	log.Debug().Int("key_count", len(keys)).Msg("API keys read from file")
	return keys, nil
}

// SplitBatches splits ids into batches of at most size elements. The final
// batch may be shorter; batch count is ceil(len(ids)/size).
func SplitBatches(ids []string, size int) [][]string {
	if size < 1 {
		size = 1
	}

	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for i := 0; i < len(ids); i += size {
		end := i + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[i:end])
	}

	return batches
}
