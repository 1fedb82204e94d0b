// Package config provides configuration loading for personagen.
//
// Configuration is loaded from a YAML file (~/.config/personagen/config.yaml
// by default), then overridden by PERSONAGEN_* environment variables.
// All values have working defaults except the Reddit API credentials.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors. Configuration problems are reported before any
// processing starts, distinct from an empty generation result.
var (
	ErrInvalidCommentBounds = errors.New("min_comment_length exceeds max_comment_length")
	ErrInvalidBudget        = errors.New("definition length budgets must be positive")
	ErrConversationBudget   = errors.New("max_single_conversation_length exceeds max_definition_length")
	ErrInvalidRateLimit     = errors.New("requests_per_minute must be positive")
	ErrMissingCredentials   = errors.New("reddit client_id and client_secret are required")
)

// Config holds the complete personagen configuration.
type Config struct {
	Reddit    RedditConfig    `koanf:"reddit"`
	Generator GeneratorConfig `koanf:"generator"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// RedditConfig holds Reddit API client configuration.
type RedditConfig struct {
	ClientID          string        `koanf:"client_id"`
	ClientSecret      Secret        `koanf:"client_secret"`
	UserAgent         string        `koanf:"user_agent"`
	APIURL            string        `koanf:"api_url"`
	TokenURL          string        `koanf:"token_url"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
	Timeout           time.Duration `koanf:"timeout"`
}

// GeneratorConfig holds the definition pipeline limits.
type GeneratorConfig struct {
	// MaxDefinitionLength is the hard ceiling on the generated definition,
	// imposed by the Character.AI definition field.
	MaxDefinitionLength int `koanf:"max_definition_length"`

	// MaxSingleConversationLength bounds one rendered conversation block,
	// leaving room for many conversations under MaxDefinitionLength.
	MaxSingleConversationLength int `koanf:"max_single_conversation_length"`

	// MinCommentLength and MaxCommentLength bound the raw (pre-sanitize)
	// length of both the reply body and its parent text.
	MinCommentLength int `koanf:"min_comment_length"`
	MaxCommentLength int `koanf:"max_comment_length"`

	// CommentLimit is the default number of recent comments to analyze.
	CommentLimit int `koanf:"comment_limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// NewDefaultConfig returns config with working defaults. Reddit credentials
// are intentionally empty and must come from file or environment.
func NewDefaultConfig() *Config {
	return &Config{
		Reddit: RedditConfig{
			UserAgent:         "personagen/0.1 (character definition generator)",
			APIURL:            "https://oauth.reddit.com",
			TokenURL:          "https://www.reddit.com/api/v1/access_token",
			RequestsPerMinute: 60,
			Timeout:           30 * time.Second,
		},
		Generator: GeneratorConfig{
			MaxDefinitionLength:         32000,
			MaxSingleConversationLength: 800,
			MinCommentLength:            10,
			MaxCommentLength:            300,
			CommentLimit:                100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for internal consistency.
// Credentials are checked separately by RequireCredentials so that
// offline operations (version, help) work without them.
func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	if c.Reddit.RequestsPerMinute <= 0 {
		return ErrInvalidRateLimit
	}
	if c.Reddit.Timeout <= 0 {
		return fmt.Errorf("reddit timeout must be positive, got %s", c.Reddit.Timeout)
	}
	return nil
}

// Validate checks the pipeline limits for internal consistency.
func (g *GeneratorConfig) Validate() error {
	if g.MaxDefinitionLength <= 0 || g.MaxSingleConversationLength <= 0 {
		return ErrInvalidBudget
	}
	if g.MaxSingleConversationLength > g.MaxDefinitionLength {
		return ErrConversationBudget
	}
	if g.MinCommentLength < 0 || g.MaxCommentLength <= 0 {
		return fmt.Errorf("comment length bounds must be positive, got [%d, %d]",
			g.MinCommentLength, g.MaxCommentLength)
	}
	if g.MinCommentLength > g.MaxCommentLength {
		return ErrInvalidCommentBounds
	}
	if g.CommentLimit <= 0 {
		return fmt.Errorf("comment_limit must be positive, got %d", g.CommentLimit)
	}
	return nil
}

// RequireCredentials verifies the Reddit API credentials are set.
func (c *Config) RequireCredentials() error {
	if c.Reddit.ClientID == "" || !c.Reddit.ClientSecret.IsSet() {
		return ErrMissingCredentials
	}
	return nil
}
