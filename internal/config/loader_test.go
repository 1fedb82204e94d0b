package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
reddit:
  client_id: file-id
  client_secret: file-secret
  timeout: 45s
generator:
  comment_limit: 250
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-id", cfg.Reddit.ClientID)
	assert.Equal(t, "file-secret", cfg.Reddit.ClientSecret.Value())
	assert.Equal(t, 45*time.Second, cfg.Reddit.Timeout)
	assert.Equal(t, 250, cfg.Generator.CommentLimit)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 32000, cfg.Generator.MaxDefinitionLength)
	assert.Equal(t, 60, cfg.Reddit.RequestsPerMinute)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
reddit:
  client_id: file-id
`)
	t.Setenv("PERSONAGEN_REDDIT_CLIENT_ID", "env-id")
	t.Setenv("PERSONAGEN_REDDIT_CLIENT_SECRET", "env-secret")
	t.Setenv("PERSONAGEN_GENERATOR_MAX_COMMENT_LENGTH", "250")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-id", cfg.Reddit.ClientID)
	assert.Equal(t, "env-secret", cfg.Reddit.ClientSecret.Value())
	assert.Equal(t, 250, cfg.Generator.MaxCommentLength)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Generator.CommentLimit)
}

func TestLoad_RejectsInconsistentLimits(t *testing.T) {
	path := writeConfigFile(t, `
generator:
  min_comment_length: 500
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidCommentBounds)
}
