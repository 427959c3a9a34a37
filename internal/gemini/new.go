package gemini

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implGenerator struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Generator backed by the Gemini API that rotates through the
// supplied API keys when one is rate limited.
func New(apiKeys []string, model string, log logger.Logger) Generator {
	return &implGenerator{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
