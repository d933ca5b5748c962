package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresClassifierCredentials(t *testing.T) {
	t.Setenv("SENT_CLASSIFIER_MODEL_ID", "")
	t.Setenv("SENT_CLASSIFIER_TOKEN", "")
	t.Setenv("HUGGINGFACE_MODEL_ID", "")
	t.Setenv("HF_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier model id and token")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SENT_CLASSIFIER_MODEL_ID", "org/modelo-sentimiento")
	t.Setenv("SENT_CLASSIFIER_TOKEN", "hf_test_token")
	t.Setenv("SENT_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "org/modelo-sentimiento", cfg.Classifier.ModelID)
	assert.Equal(t, "hf_test_token", cfg.Classifier.Token)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.Classifier.BaseURL)
}

func TestLoadLegacyEnvironmentFallback(t *testing.T) {
	t.Setenv("HUGGINGFACE_MODEL_ID", "org/modelo-legado")
	t.Setenv("HF_TOKEN", "hf_legacy_token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "org/modelo-legado", cfg.Classifier.ModelID)
	assert.Equal(t, "hf_legacy_token", cfg.Classifier.Token)
}

func TestLoadEnvTakesPrecedenceOverLegacy(t *testing.T) {
	t.Setenv("SENT_CLASSIFIER_MODEL_ID", "org/modelo-nuevo")
	t.Setenv("SENT_CLASSIFIER_TOKEN", "hf_new_token")
	t.Setenv("HUGGINGFACE_MODEL_ID", "org/modelo-legado")
	t.Setenv("HF_TOKEN", "hf_legacy_token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "org/modelo-nuevo", cfg.Classifier.ModelID)
	assert.Equal(t, "hf_new_token", cfg.Classifier.Token)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(20<<20), cfg.Upload.MaxFileBytes)
	assert.Equal(t, 512, cfg.Upload.MaxTextLength)
	assert.Equal(t, 32, cfg.Classifier.BatchSize)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "invalid_port",
			mutate: func(c *Config) { c.Server.Port = 0 },
			want:   "invalid server port",
		},
		{
			name:   "negative_read_timeout",
			mutate: func(c *Config) { c.Server.ReadTimeout = -time.Second },
			want:   "read timeout",
		},
		{
			name:   "missing_token",
			mutate: func(c *Config) { c.Classifier.Token = "" },
			want:   "classifier model id and token",
		},
		{
			name:   "zero_batch_size",
			mutate: func(c *Config) { c.Classifier.BatchSize = 0 },
			want:   "batch size",
		},
		{
			name:   "zero_max_text_length",
			mutate: func(c *Config) { c.Upload.MaxTextLength = 0 },
			want:   "max text length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Classifier.ModelID = "org/modelo"
			cfg.Classifier.Token = "hf_token"
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateNormalizesLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Classifier.ModelID = "org/modelo"
	cfg.Classifier.Token = "hf_token"
	cfg.Logging.Format = "xml"

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
}
