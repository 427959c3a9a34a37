package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/digest"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
)

// Process orchestrates the whole run for one video. Transcript acquisition
// failures and an empty transcript abort before any generation work; from
// there on the digester degrades per chunk and a document is always written.
func (p *implProcessor) Process(ctx context.Context, rawURL, basename string) error {
	startTime := time.Now()

	videoID := transcript.ExtractVideoID(rawURL)
	if videoID == "" {
		return fmt.Errorf("could not extract video ID from %q", rawURL)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing video: %s", videoID)
	p.logger.Info(ctx, "========================================")

	// Step 1: Fetch transcript (fatal on failure, nothing is written)
	raw, err := p.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return fmt.Errorf("fetch transcript: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("fetched transcript for %s is empty", videoID)
	}

	// Step 2: Resolve the output name (title failure degrades to video ID)
	title := basename
	if basename == "" {
		title, err = p.fetcher.Title(ctx, videoID)
		if err != nil {
			p.logger.Warn(ctx, "Failed to get video title, using video ID: %v", err)
			title = videoID
		}
		basename = transcript.SanitizeFilename(title)
		if basename == "" {
			basename = videoID
		}
	}

	// Step 3: Summary pass + formatting pass + assembly
	doc, err := p.digester.Build(ctx, raw)
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}

	// Step 4: Write the document
	outPath := filepath.Join(p.cfg.Paths.Output, basename+".org")
	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	// Step 5: Optional docx rendition (failure never loses the .org output)
	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, basename+".docx")
		if err := digest.WriteDocx(title, doc, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx rendition: %v", err)
		} else {
			p.logger.Info(ctx, "Docx rendition: %s", docxPath)
		}
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output document: %s", outPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}
