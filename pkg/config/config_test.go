package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, cfg Config) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIToken, "")
	t.Setenv(EnvBackendURL, "")

	testConfig := Config{
		Username: "jdoe",
		Template: "modern",
		Backend: BackendConfig{
			BaseURL: "https://api.example.com",
			Token:   "file-token",
		},
		Pandoc: PandocConfig{
			TemplatePath: "resume-template.latex",
		},
	}

	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Username != "jdoe" {
		t.Errorf("Expected username jdoe, got %s", cfg.Username)
	}
	if cfg.Template != "modern" {
		t.Errorf("Expected template modern, got %s", cfg.Template)
	}
	if cfg.Backend.Token != "file-token" {
		t.Errorf("Expected token from file, got %s", cfg.Backend.Token)
	}
	if cfg.Defaults.OutputDir != DefaultOutputDir {
		t.Errorf("Expected default output dir %s, got %s", DefaultOutputDir, cfg.Defaults.OutputDir)
	}
	if cfg.GetPortfolioPath() != DefaultPortfolioPath {
		t.Errorf("Expected default portfolio path, got %s", cfg.GetPortfolioPath())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvBackendURL, "https://env.example.com")

	cfg, err := Load(writeConfig(t, Config{
		Username: "jdoe",
		Backend:  BackendConfig{Token: "file-token"},
		Pandoc:   PandocConfig{TemplatePath: "t.latex"},
	}))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Backend.Token != "env-token" {
		t.Errorf("Expected env token, got %s", cfg.Backend.Token)
	}
	if !cfg.HasBackend() || cfg.Backend.BaseURL != "https://env.example.com" {
		t.Errorf("Expected env backend URL, got %s", cfg.Backend.BaseURL)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte("{not json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected error loading invalid config, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError string
	}{
		{
			name: "valid config",
			config: Config{
				Username: "jdoe",
				Pandoc:   PandocConfig{TemplatePath: "template.latex"},
			},
		},
		{
			name: "missing username",
			config: Config{
				Pandoc: PandocConfig{TemplatePath: "template.latex"},
			},
			wantError: "username is required",
		},
		{
			name: "missing pandoc template",
			config: Config{
				Username: "jdoe",
			},
			wantError: "pandoc.template_path is required",
		},
		{
			name: "unknown template",
			config: Config{
				Username: "jdoe",
				Template: "creative",
				Pandoc:   PandocConfig{TemplatePath: "template.latex"},
			},
			wantError: "template must be one of: classic modern",
		},
		{
			name: "invalid backend url",
			config: Config{
				Username: "jdoe",
				Backend:  BackendConfig{BaseURL: "not a url"},
				Pandoc:   PandocConfig{TemplatePath: "template.latex"},
			},
			wantError: "backend.base_url must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Expected error containing %q, got %v", tt.wantError, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Username: "jdoe",
		Pandoc:   PandocConfig{TemplatePath: "template.latex"},
	}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Template != DefaultTemplate {
		t.Errorf("Expected template to default to %s, got %s", DefaultTemplate, cfg.Template)
	}
	if cfg.Defaults.OutputDir != DefaultOutputDir {
		t.Errorf("Expected output dir to default to %s, got %s", DefaultOutputDir, cfg.Defaults.OutputDir)
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if cfg.Defaults.OutputDir == "" {
		t.Error("Default output dir was not set")
	}
	if cfg.Template != DefaultTemplate {
		t.Errorf("Expected default template %s, got %s", DefaultTemplate, cfg.Template)
	}

	err = cfg.Validate()
	if err != nil {
		t.Errorf("Expected generated config to validate, got %v", err)
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
