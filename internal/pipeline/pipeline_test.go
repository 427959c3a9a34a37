package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type stubFetcher struct {
	transcript string
	fetchErr   error
	title      string
	titleErr   error
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	return s.transcript, s.fetchErr
}

func (s *stubFetcher) Title(ctx context.Context, videoID string) (string, error) {
	return s.title, s.titleErr
}

type stubDigester struct {
	doc      string
	buildErr error
}

func (s *stubDigester) Summarize(ctx context.Context, transcript string) string { return s.doc }
func (s *stubDigester) Reformat(ctx context.Context, transcript string) string  { return s.doc }
func (s *stubDigester) Build(ctx context.Context, transcript string) (string, error) {
	return s.doc, s.buildErr
}

func newTestProcessor(t *testing.T, fetcher *stubFetcher, dig *stubDigester) (*implProcessor, string) {
	t.Helper()
	outDir := t.TempDir()

	cfg := &config.Config{}
	cfg.Paths.Output = outDir

	p := New(cfg, fetcher, dig, logger.New("error")).(*implProcessor)
	return p, outDir
}

func TestProcessWritesDocument(t *testing.T) {
	fetcher := &stubFetcher{transcript: "spoken words", title: "Test Video Title"}
	dig := &stubDigester{doc: "* Summary\n\nok\n"}
	p, outDir := newTestProcessor(t, fetcher, dig)

	err := p.Process(context.Background(), "https://www.youtube.com/watch?v=KijwP7D-BBo", "")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "Test-Video-Title.org"))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if string(data) != dig.doc {
		t.Errorf("document = %q, want %q", data, dig.doc)
	}
}

func TestProcessTitleFailureFallsBackToVideoID(t *testing.T) {
	fetcher := &stubFetcher{transcript: "spoken words", titleErr: errors.New("yt-dlp missing")}
	dig := &stubDigester{doc: "doc"}
	p, outDir := newTestProcessor(t, fetcher, dig)

	err := p.Process(context.Background(), "KijwP7D-BBo", "")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "KijwP7D-BBo.org")); err != nil {
		t.Errorf("expected document named after video ID: %v", err)
	}
}

func TestProcessBasenameOverride(t *testing.T) {
	fetcher := &stubFetcher{transcript: "spoken words", title: "ignored"}
	dig := &stubDigester{doc: "doc"}
	p, outDir := newTestProcessor(t, fetcher, dig)

	err := p.Process(context.Background(), "KijwP7D-BBo", "my-notes")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "my-notes.org")); err != nil {
		t.Errorf("expected overridden basename: %v", err)
	}
}

func TestProcessFatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		fetcher *stubFetcher
		dig     *stubDigester
		wantMsg string
	}{
		{
			name:    "bad URL",
			rawURL:  "https://example.com/nope",
			fetcher: &stubFetcher{},
			dig:     &stubDigester{},
			wantMsg: "could not extract video ID",
		},
		{
			name:    "fetch failure",
			rawURL:  "KijwP7D-BBo",
			fetcher: &stubFetcher{fetchErr: errors.New("no captions")},
			dig:     &stubDigester{},
			wantMsg: "fetch transcript",
		},
		{
			name:    "empty transcript",
			rawURL:  "KijwP7D-BBo",
			fetcher: &stubFetcher{transcript: "   "},
			dig:     &stubDigester{},
			wantMsg: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, outDir := newTestProcessor(t, tt.fetcher, tt.dig)

			err := p.Process(context.Background(), tt.rawURL, "")
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Process() error = %v, want message containing %q", err, tt.wantMsg)
			}

			// No partial output on fatal errors
			entries, readErr := os.ReadDir(outDir)
			if readErr != nil {
				t.Fatal(readErr)
			}
			if len(entries) != 0 {
				t.Errorf("output dir not empty after fatal error: %d entries", len(entries))
			}
		})
	}
}
