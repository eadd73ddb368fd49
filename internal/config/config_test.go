package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MINIO_BUCKET", "PDFLATEX_BINARY", "CV_CLEAN_FAILED"} {
		orig := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, orig)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pdflatex", cfg.Compiler.Binary)
	assert.Equal(t, "cv-artifacts", cfg.ObjectStore.Bucket)
	assert.False(t, cfg.Compiler.CleanFailedArtifacts)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/cv")
	t.Setenv("MINIO_ENDPOINT", "minio.local:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CV_CLEAN_FAILED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, "minio.local:9000", cfg.ObjectStore.Endpoint)
	assert.True(t, cfg.ObjectStore.UseSSL)
	assert.True(t, cfg.Compiler.CleanFailedArtifacts)
}

func TestGetEnvBool_Invalid(t *testing.T) {
	t.Setenv("CV_CLEAN_FAILED", "not-a-bool")

	cfg := Load()
	assert.False(t, cfg.Compiler.CleanFailedArtifacts)
}
