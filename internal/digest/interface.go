package digest

import "context"

// Digester turns a raw transcript into a two-section document: a detailed
// summary followed by a cleaned-up rendition of the full transcript.
type Digester interface {
	// Summarize runs one whole-transcript generation call and returns the
	// summary text, or a fixed placeholder when the call fails.
	Summarize(ctx context.Context, transcript string) string

	// Reformat converts the transcript to clean prose chunk by chunk. A
	// failed chunk is replaced by a placeholder tagged with its 1-based
	// ordinal; the output always has one unit per chunk.
	Reformat(ctx context.Context, transcript string) string

	// Build runs both passes and assembles the final document. It fails
	// only when the transcript is empty.
	Build(ctx context.Context, transcript string) (string, error)
}
