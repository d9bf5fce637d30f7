package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/iyhunko/product-catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.EnvFilePath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(config.Env, "production")
	t.Setenv(config.APIKeyEnv, "secret")
	t.Setenv(config.LogLevelEnv, "debug")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9191")
	t.Setenv(config.AWSRegionEnv, "eu-west-1")
	t.Setenv(config.AWSEndpointEnv, "http://localhost:4566")
	t.Setenv(config.SQSQueueURLEnv, "http://localhost:4566/000000000000/products")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "loading config should not return error")

	assert.True(t, conf.IsProduction(), "production mode should be detected")
	assert.Equal(t, "secret", conf.APIKey, "API key should be 'secret'")
	assert.Equal(t, slog.LevelDebug, conf.LogLevel, "log level should be debug")
	assert.Equal(t, "8080", conf.HTTPServer.Port, "HTTP Server Port should be '8080'")
	assert.Equal(t, "9191", conf.MetricsServer.Port, "Metrics Server Port should be '9191'")
	assert.Equal(t, "eu-west-1", conf.AWS.Region)
	assert.Equal(t, "http://localhost:4566", conf.AWS.Endpoint)
	assert.Equal(t, "http://localhost:4566/000000000000/products", conf.AWS.SQSQueueURL)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(config.EnvFilePath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(config.APIKeyEnv, "secret")
	for _, key := range []string{config.Env, config.LogLevelEnv, config.HTTPServerPortEnv, config.MetricsServerPortEnv, config.AWSRegionEnv, config.SQSQueueURLEnv} {
		t.Setenv(key, "")
	}

	conf, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.False(t, conf.IsProduction())
	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, slog.LevelInfo, conf.LogLevel)
	assert.Equal(t, "3000", conf.HTTPServer.Port)
	assert.Equal(t, "9090", conf.MetricsServer.Port)
	assert.Equal(t, "us-east-1", conf.AWS.Region)
	assert.Empty(t, conf.AWS.SQSQueueURL)
}

func TestLoadFromEnv_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_KEY=from-file\nHTTP_SERVER_PORT=4000\n"), 0o600))
	t.Setenv(config.EnvFilePath, path)
	// godotenv never overrides variables that are already set
	t.Setenv(config.APIKeyEnv, "")
	require.NoError(t, os.Unsetenv(config.APIKeyEnv))
	t.Setenv(config.HTTPServerPortEnv, "")
	require.NoError(t, os.Unsetenv(config.HTTPServerPortEnv))

	conf, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "from-file", conf.APIKey)
	assert.Equal(t, "4000", conf.HTTPServer.Port)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		t.Setenv(config.EnvFilePath, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv(config.APIKeyEnv, "")

		conf, err := config.LoadFromEnv()

		assert.ErrorIs(t, err, config.ErrMissingConfig)
		assert.Nil(t, conf)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv(config.EnvFilePath, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv(config.APIKeyEnv, "secret")
		t.Setenv(config.HTTPServerPortEnv, "http")

		conf, err := config.LoadFromEnv()

		assert.Error(t, err)
		assert.Nil(t, conf)
	})
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue string
		want         string
	}{
		{"GetEnv_Set", "value", "default", "value"},
		{"GetEnv_Empty", "", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnv("TEST_ENV", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsLevel(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     slog.Level
	}{
		{"GetEnvAsLevel_Debug", "debug", slog.LevelDebug},
		{"GetEnvAsLevel_Warn", "WARN", slog.LevelWarn},
		{"GetEnvAsLevel_Invalid", "loud", slog.LevelInfo},
		{"GetEnvAsLevel_Empty", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnvAsLevel("TEST_ENV", slog.LevelInfo)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNumbers_Valid", map[string]string{"key1": "123", "key2": "456", "key3": "789"}, false},
		{"AllNumbers_Invalid", map[string]string{"key1": "123", "key2": "abc", "key3": "789"}, true},
		{"AllNumbers_EmptyString", map[string]string{"key1": "123", "key2": "", "key3": "789"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNumbers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNonEmpty_Valid", map[string]string{"key1": "host", "key2": "user", "key3": "pass"}, false},
		{"AllNonEmpty_EmptyString", map[string]string{"key1": "host", "key2": "", "key3": "pass"}, true},
		{"AllNonEmpty_AllEmpty", map[string]string{"key1": "", "key2": "", "key3": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNonEmpty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_RequireQueue(t *testing.T) {
	conf := &config.Config{}
	err := conf.RequireQueue()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingConfig)
	assert.Contains(t, err.Error(), config.SQSQueueURLEnv)

	conf.AWS.SQSQueueURL = "http://localhost:4566/000000000000/products"
	assert.NoError(t, conf.RequireQueue())
}
