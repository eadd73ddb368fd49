package config

import (
	"testing"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", bcryptCost: "", wantCost: 12},
		{name: "boundary cost 10", bcryptCost: "10", wantCost: 10},
		{name: "boundary cost 14", bcryptCost: "14", wantCost: 14},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "negative cost", bcryptCost: "-5", wantErr: true},
		{name: "non-numeric cost", bcryptCost: "invalid", wantErr: true},
		{name: "float cost", bcryptCost: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)

			cfg, err := NewPasswordConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPasswordConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.BcryptCost != tt.wantCost {
				t.Errorf("NewPasswordConfig() BcryptCost = %v, want %v", cfg.BcryptCost, tt.wantCost)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	password := "test-password-123"
	hash, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty hash")
	}

	if !VerifyPassword(password, hash) {
		t.Error("VerifyPassword() should return true for correct password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() should return false for incorrect password")
	}

	// bcrypt salts, so two hashes of the same input differ
	hash2, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() should produce different hashes for same password")
	}
}

func TestVerifyPassword_MalformedHashes(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$2a$12$invalid",
		"invalid$format",
	}
	for _, hash := range malformed {
		if VerifyPassword("test", hash) {
			t.Errorf("VerifyPassword() should return false for malformed hash: %q", hash)
		}
	}
}
