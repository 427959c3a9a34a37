package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/segmenter"
)

// ErrEmptyTranscript is returned by Build when there is nothing to process.
var ErrEmptyTranscript = errors.New("transcript is empty")

// Build runs the summary pass, then the formatting pass, and assembles the
// final document. Generation failures degrade to placeholders; only an empty
// transcript is fatal, and it is rejected before any generation call.
func (d *implDigester) Build(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}

	d.logger.Info(ctx, "Digesting transcript (%d characters)", len(transcript))

	summary := d.Summarize(ctx, transcript)
	formatted := d.Reformat(ctx, transcript)

	return assemble(summary, formatted), nil
}

// Summarize generates a detailed summary of the whole transcript in a single
// call. On failure it logs the error and returns the summary placeholder so
// document assembly can still proceed.
func (d *implDigester) Summarize(ctx context.Context, transcript string) string {
	d.logger.Info(ctx, "Generating summary...")

	text, err := d.generator.Generate(ctx, fmt.Sprintf(summaryPrompt, transcript))
	if err != nil {
		d.logger.Error(ctx, "Summary generation failed: %v", err)
		return summaryPlaceholder
	}

	return strings.TrimSpace(text)
}

// Reformat rewrites the transcript as clean prose, one bounded chunk at a
// time, strictly in order. A failed chunk becomes "[Error formatting chunk N]"
// and never blocks the chunks after it.
func (d *implDigester) Reformat(ctx context.Context, transcript string) string {
	chunks := segmenter.Split(transcript, d.maxChunkSize)
	d.logger.Info(ctx, "Formatting transcript in %d chunks (max %d chars each)", len(chunks), d.maxChunkSize)

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		d.logger.Info(ctx, "[%d/%d] Formatting chunk (%d chars)", i+1, len(chunks), len(chunk))

		text, err := d.generator.Generate(ctx, fmt.Sprintf(formatPrompt, chunk))
		if err != nil {
			d.logger.Error(ctx, "Failed to format chunk %d: %v", i+1, err)
			parts = append(parts, fmt.Sprintf("[Error formatting chunk %d]", i+1))
			continue
		}

		parts = append(parts, strings.TrimSpace(text))
	}

	return strings.Join(parts, "\n\n")
}

// assemble concatenates the two sections under their fixed headings, summary
// first. It never transforms the section bodies.
func assemble(summary, formatted string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n", summaryHeading, summary, transcriptHeading, formatted)
}
