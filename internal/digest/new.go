package digest

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/gemini"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/segmenter"
)

type implDigester struct {
	generator    gemini.Generator
	maxChunkSize int
	logger       logger.Logger
}

// New creates a Digester that generates text through gen and splits the
// formatting pass into chunks of at most maxChunkSize characters.
func New(gen gemini.Generator, maxChunkSize int, log logger.Logger) Digester {
	if maxChunkSize <= 0 {
		maxChunkSize = segmenter.DefaultMaxChunkSize
	}
	return &implDigester{
		generator:    gen,
		maxChunkSize: maxChunkSize,
		logger:       log,
	}
}
