package pipeline

import "context"

// Processor runs the full fetch, digest and write pipeline for one video.
type Processor interface {
	// Process fetches the transcript for the video behind rawURL, digests
	// it and writes the document into the configured output directory.
	// basename overrides the output file name; empty means derive it from
	// the video title (falling back to the video ID).
	Process(ctx context.Context, rawURL, basename string) error
}
