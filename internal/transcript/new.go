package transcript

import (
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/pkg/executor"
)

type implFetcher struct {
	client    transcriptClient
	languages []string
	ytdlpPath string
	executor  executor.Executor
	logger    logger.Logger
}

// New creates a Fetcher that reads captions through the youtube-transcript
// API and resolves titles through yt-dlp.
func New(languages []string, ytdlpPath string, exec executor.Executor, log logger.Logger) Fetcher {
	formatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)

	return &implFetcher{
		client:    yt_transcript.NewClient(yt_transcript.WithFormatter(formatter)),
		languages: languages,
		ytdlpPath: ytdlpPath,
		executor:  exec,
		logger:    log,
	}
}
