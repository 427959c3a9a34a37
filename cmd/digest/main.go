package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/digest"
	"github.com/nguyentantai21042004/transcript-digest/internal/gemini"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
	"github.com/nguyentantai21042004/transcript-digest/internal/watcher"
	"github.com/nguyentantai21042004/transcript-digest/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	output := flag.String("o", "", "Output basename override (one-shot mode)")
	flag.Parse()

	ctx := context.Background()

	// Missing .env is fine; keys may come from config.yaml or the shell
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Transcript Digest")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Max chunk size: %d characters", cfg.Chunking.MaxChunkSize)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	fetcher := transcript.New(cfg.Transcript.Languages, cfg.Transcript.YtdlpPath, exec, log)
	gen := gemini.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	dig := digest.New(gen, cfg.Chunking.MaxChunkSize, log)
	proc := pipeline.New(cfg, fetcher, dig, log)

	// One-shot mode: digest the URL given on the command line
	if flag.NArg() > 0 {
		if err := proc.Process(ctx, flag.Arg(0), *output); err != nil {
			log.Error(ctx, "Processing failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: process link files dropped into the inbox
	runWatch(ctx, cfg, proc, log)
}

func runWatch(ctx context.Context, cfg *config.Config, proc pipeline.Processor, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		rawURL, err := readLinkFile(filePath)
		if err != nil {
			return err
		}

		if err := proc.Process(ctx, rawURL, ""); err != nil {
			return err
		}

		// Move the link file aside so it won't be re-processed
		dest := filepath.Join(cfg.Paths.Archived, filepath.Base(filePath))
		if err := os.Rename(filePath, dest); err != nil {
			log.Warn(ctx, "Failed to archive %s: %v", filePath, err)
		}

		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript digest is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "")
	log.Info(ctx, "Drop a .url or .txt file containing a YouTube link")
	log.Info(ctx, "into the inbox to digest it.")
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Transcript digest stopped")
}

// readLinkFile returns the first non-empty, non-comment line of a link file
func readLinkFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read link file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}

	return "", fmt.Errorf("no URL found in %s", path)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
