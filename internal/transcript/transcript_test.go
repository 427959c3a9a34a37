package transcript

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type stubClient struct {
	text string
	err  error
}

func (s *stubClient) GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error) {
	return s.text, s.err
}

type stubExecutor struct {
	out string
	err error
}

func (s *stubExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return s.out, s.err
}

func newTestFetcher(client transcriptClient, exec *stubExecutor) *implFetcher {
	return &implFetcher{
		client:    client,
		languages: []string{"en"},
		ytdlpPath: "yt-dlp",
		executor:  exec,
		logger:    logger.New("error"),
	}
}

func TestFetchFlattensWhitespace(t *testing.T) {
	f := newTestFetcher(&stubClient{text: "hello\nworld\n  again  \n"}, &stubExecutor{})

	got, err := f.Fetch(context.Background(), "KijwP7D-BBo")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "hello world again" {
		t.Errorf("Fetch() = %q, want %q", got, "hello world again")
	}
}

func TestFetchError(t *testing.T) {
	f := newTestFetcher(&stubClient{err: errors.New("no captions")}, &stubExecutor{})

	if _, err := f.Fetch(context.Background(), "KijwP7D-BBo"); err == nil {
		t.Error("Fetch() should return error when the caption fetch fails")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		want    string
		wantErr bool
	}{
		{"plain title", "Test Video Title\n", nil, "Test Video Title", false},
		{"extra lines kept to first", "Test Video Title\nnoise\n", nil, "Test Video Title", false},
		{"command failure", "", errors.New("yt-dlp not found"), "", true},
		{"empty output", "\n", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(&stubClient{}, &stubExecutor{out: tt.out, err: tt.err})

			got, err := f.Title(context.Background(), "KijwP7D-BBo")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Title() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=KijwP7D-BBo", "KijwP7D-BBo"},
		{"watch URL with extra params", "https://www.youtube.com/watch?list=PL123&v=KijwP7D-BBo&t=10s", "KijwP7D-BBo"},
		{"short URL", "https://youtu.be/KijwP7D-BBo", "KijwP7D-BBo"},
		{"embed URL", "https://www.youtube.com/embed/KijwP7D-BBo", "KijwP7D-BBo"},
		{"live URL", "https://www.youtube.com/live/KijwP7D-BBo", "KijwP7D-BBo"},
		{"shorts URL", "https://www.youtube.com/shorts/KijwP7D-BBo", "KijwP7D-BBo"},
		{"no scheme", "youtube.com/watch?v=KijwP7D-BBo", "KijwP7D-BBo"},
		{"bare video ID", "KijwP7D-BBo", "KijwP7D-BBo"},
		{"not a video URL", "https://example.com/watch?v=KijwP7D-BBo", ""},
		{"garbage", "not a url at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.input); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"spaces become dashes", "Test Video Title", "Test-Video-Title"},
		{"special characters dropped", "What's New? (2026)", "Whats-New-2026"},
		{"dash runs collapse", "a -- b", "a-b"},
		{"keeps dots and underscores", "v1.2_final", "v1.2_final"},
		{"trims edge dashes", " - hello - ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.title); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
