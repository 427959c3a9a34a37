package transcript

import (
	"context"
	"fmt"
	"strings"
)

// Fetch downloads the caption track and flattens it to one line of text.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	f.logger.Info(ctx, "Fetching transcript for video %s (languages: %s)", videoID, strings.Join(f.languages, ","))

	text, err := f.client.GetFormattedTranscripts(videoID, f.languages, false)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}

	// Caption tracks arrive one snippet per line; collapse to single spaces.
	flattened := strings.Join(strings.Fields(text), " ")

	f.logger.Debug(ctx, "Fetched transcript: %d characters", len(flattened))
	return flattened, nil
}

// Title asks yt-dlp for the video title. Callers treat a failure here as
// degradable and fall back to the video ID.
func (f *implFetcher) Title(ctx context.Context, videoID string) (string, error) {
	url := "https://www.youtube.com/watch?v=" + videoID

	out, err := f.executor.Execute(ctx, f.ytdlpPath, "--no-warnings", "--get-title", url)
	if err != nil {
		return "", fmt.Errorf("get video title: %w", err)
	}

	title := strings.TrimSpace(out)
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}
	if title == "" {
		return "", fmt.Errorf("yt-dlp returned empty title")
	}

	return title, nil
}
