package transcript

import "context"

// Fetcher retrieves transcripts and metadata for YouTube videos.
type Fetcher interface {
	// Fetch returns the full transcript of the video as a single string
	// with whitespace collapsed to single spaces.
	Fetch(ctx context.Context, videoID string) (string, error)

	// Title returns the video title via yt-dlp.
	Title(ctx context.Context, videoID string) (string, error)
}

// transcriptClient is the slice of the youtube-transcript-api client this
// package consumes; tests substitute a stub.
type transcriptClient interface {
	GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error)
}
