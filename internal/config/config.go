// Package config provides configuration loading for the server and CLI.
// Everything comes from environment variables; a .env file is picked up
// by godotenv at startup.
package config

import (
	"os"
	"strconv"
)

// ObjectStoreConfig holds S3-compatible object storage settings. An empty
// Endpoint disables artifact publishing entirely.
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CompilerConfig holds settings for the external LaTeX toolchain.
type CompilerConfig struct {
	Binary               string
	OutputDir            string
	StylePath            string
	CleanFailedArtifacts bool
}

// Config is the centralized configuration struct for the application.
type Config struct {
	Port          string
	DatabaseURL   string
	AdminUsername string
	AdminPassHash string // bcrypt hash, generated with the hash-password command
	Compiler      CompilerConfig
	ObjectStore   ObjectStoreConfig
}

// Load reads configuration from environment variables. Real environment
// variables take precedence over anything loaded from a .env file.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		Compiler: CompilerConfig{
			Binary:               getEnv("PDFLATEX_BINARY", "pdflatex"),
			OutputDir:            getEnv("CV_OUTPUT_DIR", "output"),
			StylePath:            getEnv("CV_STYLE_PATH", "assets/academic-cv.sty"),
			CleanFailedArtifacts: getEnvBool("CV_CLEAN_FAILED", false),
		},
		ObjectStore: ObjectStoreConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "cv-artifacts"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
