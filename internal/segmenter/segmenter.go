package segmenter

import (
	"strings"
	"unicode"
)

// DefaultMaxChunkSize is the chunk bound used when no size is configured.
const DefaultMaxChunkSize = 20000

// Split divides text into an ordered sequence of chunks of at most maxSize
// characters each, breaking on the last whitespace boundary inside every
// window. A whitespace-free run longer than maxSize is cut exactly at
// maxSize. Leading and trailing whitespace around split points is dropped;
// no emitted chunk is empty.
func Split(text string, maxSize int) []string {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}

	var chunks []string
	remaining := strings.TrimSpace(text)

	for len(remaining) > maxSize {
		cut := lastBoundary(remaining, maxSize)
		if cut <= 0 {
			// No whitespace in the window: hard cut at maxSize.
			cut = maxSize
		}

		chunk := strings.TrimSpace(remaining[:cut])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		remaining = strings.TrimSpace(remaining[cut:])
	}

	if remaining != "" {
		chunks = append(chunks, remaining)
	}

	return chunks
}

// lastBoundary returns the index of the last whitespace character at or
// before offset maxSize, or -1 if the window contains none.
func lastBoundary(s string, maxSize int) int {
	return strings.LastIndexFunc(s[:maxSize+1], unicode.IsSpace)
}
