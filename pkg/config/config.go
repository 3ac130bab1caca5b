package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// DefaultTemplate is used when the config names no template.
	DefaultTemplate = "classic"
	// DefaultOutputDir is used when the config names no output directory.
	DefaultOutputDir = "./exports"
	// DefaultPortfolioPath is the backend route serving the signed-in user's portfolio.
	DefaultPortfolioPath = "/api/v1/portfolio/me"

	// EnvAPIToken overrides backend.token.
	EnvAPIToken = "PORTFOLIO_API_TOKEN"
	// EnvBackendURL overrides backend.base_url.
	EnvBackendURL = "PORTFOLIO_BACKEND_URL"
)

// Config represents the application configuration.
type Config struct {
	Username string        `json:"username" validate:"required"`
	Template string        `json:"template,omitempty" validate:"oneof=classic modern"`
	Backend  BackendConfig `json:"backend"`
	Pandoc   PandocConfig  `json:"pandoc"`
	Defaults DefaultConfig `json:"defaults"`
}

// BackendConfig locates the portfolio API.
type BackendConfig struct {
	BaseURL       string `json:"base_url,omitempty" validate:"omitempty,url"`
	Token         string `json:"token,omitempty"`
	PortfolioPath string `json:"portfolio_path,omitempty"`
	Selector      string `json:"selector,omitempty"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	TemplatePath string `json:"template_path" validate:"required"`
	ClassFile    string `json:"class_file,omitempty"`
	Engine       string `json:"engine,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// DefaultPath returns $HOME/.portfolio-builder/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".portfolio-builder", "config.json")
	return path, err
}

// HasBackend reports whether a backend URL is configured.
func (c *Config) HasBackend() (ok bool) {
	ok = c.Backend.BaseURL != ""
	return ok
}

// GetPortfolioPath returns the backend portfolio route or the default.
func (c *Config) GetPortfolioPath() (path string) {
	if c.Backend.PortfolioPath != "" {
		path = c.Backend.PortfolioPath
		return path
	}
	path = DefaultPortfolioPath
	return path
}

// Load reads configuration from file with environment variable overrides.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'portfolio-builder init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	if token := os.Getenv(EnvAPIToken); token != "" {
		cfg.Backend.Token = token
	}
	if baseURL := os.Getenv(EnvBackendURL); baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate fills defaults and checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	if c.Template == "" {
		c.Template = DefaultTemplate
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = DefaultOutputDir
	}

	err = validator.New().Struct(c)
	if err != nil {
		err = describeValidationError(err)
		return err
	}

	return err
}

// describeValidationError turns validator output into config key names.
func describeValidationError(err error) (described error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		described = err
		return described
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := configKey(fe.Namespace())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, key+" is required in config")
		case "oneof":
			msgs = append(msgs, key+" must be one of: "+fe.Param())
		case "url":
			msgs = append(msgs, key+" must be a valid URL")
		default:
			msgs = append(msgs, key+" is invalid")
		}
	}

	described = errors.New(strings.Join(msgs, "; "))
	return described
}

// configKey maps "Config.Pandoc.TemplatePath" to "pandoc.template_path".
func configKey(namespace string) (key string) {
	keys := map[string]string{
		"Config.Username":            "username",
		"Config.Template":            "template",
		"Config.Backend.BaseURL":     "backend.base_url",
		"Config.Pandoc.TemplatePath": "pandoc.template_path",
	}
	key, ok := keys[namespace]
	if !ok {
		key = namespace
	}
	return key
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		Username: "your-username",
		Template: DefaultTemplate,
		Backend: BackendConfig{
			BaseURL:       "",
			PortfolioPath: DefaultPortfolioPath,
			Selector:      "",
		},
		Pandoc: PandocConfig{
			TemplatePath: filepath.Join(homeDir, ".portfolio-builder", "resume-template.latex"),
		},
		Defaults: DefaultConfig{
			OutputDir: filepath.Join(homeDir, "Documents", "Portfolio"),
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
