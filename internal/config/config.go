package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Output      OutputConfig      `yaml:"output"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type ChunkingConfig struct {
	MaxChunkSize int `yaml:"max_chunk_size"`
}

type TranscriptConfig struct {
	Languages []string `yaml:"languages"`
	YtdlpPath string   `yaml:"ytdlp_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		if env := os.Getenv("GEMINI_API_KEY"); env != "" {
			for _, key := range strings.Split(env, ",") {
				if key = strings.TrimSpace(key); key != "" {
					c.Gemini.APIKeys = append(c.Gemini.APIKeys, key)
				}
			}
		}
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Chunking.MaxChunkSize == 0 {
		c.Chunking.MaxChunkSize = 20000
	}
	if c.Chunking.MaxChunkSize < 0 {
		return fmt.Errorf("chunking.max_chunk_size must be positive")
	}
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en"}
	}
	if c.Transcript.YtdlpPath == "" {
		c.Transcript.YtdlpPath = "yt-dlp"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
