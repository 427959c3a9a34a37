package pipeline

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/digest"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
)

type implProcessor struct {
	cfg      *config.Config
	fetcher  transcript.Fetcher
	digester digest.Digester
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, fetcher transcript.Fetcher, dig digest.Digester, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		fetcher:  fetcher,
		digester: dig,
		logger:   log,
	}
}
