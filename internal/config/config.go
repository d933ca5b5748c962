package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Security   SecurityConfig   `yaml:"security" envconfig:"SECURITY"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Classifier ClassifierConfig `yaml:"classifier" envconfig:"CLASSIFIER"`
	Upload     UploadConfig     `yaml:"upload" envconfig:"UPLOAD"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// ClassifierConfig contains the hosted sentiment model configuration.
// ModelID and Token are required at startup; the service refuses to boot
// without a classifier to call.
type ClassifierConfig struct {
	ModelID   string        `yaml:"model_id" envconfig:"MODEL_ID"`
	Token     string        `yaml:"token" envconfig:"TOKEN"`
	BaseURL   string        `yaml:"base_url" envconfig:"BASE_URL" default:"https://api-inference.huggingface.co"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	BatchSize int           `yaml:"batch_size" envconfig:"BATCH_SIZE" default:"32"`
	RPS       float64       `yaml:"rps" envconfig:"RPS" default:"8"`
	Burst     int           `yaml:"burst" envconfig:"BURST" default:"16"`
}

// UploadConfig contains limits for uploaded files and single texts
type UploadConfig struct {
	MaxFileBytes  int64 `yaml:"max_file_bytes" envconfig:"MAX_FILE_BYTES" default:"20971520"`
	MaxTextLength int   `yaml:"max_text_length" envconfig:"MAX_TEXT_LENGTH" default:"512"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over the YAML file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SENT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	// Honor the legacy environment contract for classifier credentials.
	if cfg.Classifier.ModelID == "" {
		cfg.Classifier.ModelID = os.Getenv("HUGGINGFACE_MODEL_ID")
	}
	if cfg.Classifier.Token == "" {
		cfg.Classifier.Token = os.Getenv("HF_TOKEN")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Server.Port == 0 {
		envConfig.Server.Port = fileConfig.Server.Port
	}
	if envConfig.Server.ReadTimeout == 0 {
		envConfig.Server.ReadTimeout = fileConfig.Server.ReadTimeout
	}
	if envConfig.Server.WriteTimeout == 0 {
		envConfig.Server.WriteTimeout = fileConfig.Server.WriteTimeout
	}
	if envConfig.Classifier.ModelID == "" {
		envConfig.Classifier.ModelID = fileConfig.Classifier.ModelID
	}
	if envConfig.Classifier.Token == "" {
		envConfig.Classifier.Token = fileConfig.Classifier.Token
	}
	if envConfig.Classifier.BaseURL == "" {
		envConfig.Classifier.BaseURL = fileConfig.Classifier.BaseURL
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if c.Classifier.ModelID == "" || c.Classifier.Token == "" {
		return fmt.Errorf("classifier model id and token must be set (SENT_CLASSIFIER_MODEL_ID/HUGGINGFACE_MODEL_ID, SENT_CLASSIFIER_TOKEN/HF_TOKEN)")
	}

	if c.Classifier.BatchSize <= 0 {
		return fmt.Errorf("classifier batch size must be positive")
	}

	if c.Upload.MaxFileBytes <= 0 {
		return fmt.Errorf("upload max file bytes must be positive")
	}

	if c.Upload.MaxTextLength <= 0 {
		return fmt.Errorf("upload max text length must be positive")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}

	return nil
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     50,
				Burst:   25,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Classifier: ClassifierConfig{
			BaseURL:   "https://api-inference.huggingface.co",
			Timeout:   30 * time.Second,
			BatchSize: 32,
			RPS:       8,
			Burst:     16,
		},
		Upload: UploadConfig{
			MaxFileBytes:  20 << 20,
			MaxTextLength: 512,
		},
	}
}
