package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the gusto API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Inference InferenceConfig `yaml:"inference"`
	Ranking   RankingConfig   `yaml:"ranking"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// LLMConfig holds chat completion settings.
type LLMConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	CacheTTL   int    `yaml:"cache_ttl_sec"` // 0 = no expiry
}

// DiscoveryConfig holds restaurant discovery (Yelp) settings.
type DiscoveryConfig struct {
	APIKey          string `yaml:"api_key"`
	BaseURL         string `yaml:"base_url"`
	TimeoutSec      int    `yaml:"timeout_sec"`
	Limit           int    `yaml:"limit"`
	DefaultLocation string `yaml:"default_location"`
	RetryDelaySec   int    `yaml:"retry_delay_sec"`
}

// InferenceConfig holds taste inference settings.
type InferenceConfig struct {
	KeywordWeight  float64 `yaml:"keyword_weight"`
	SemanticWeight float64 `yaml:"semantic_weight"`
	LLMWeight      float64 `yaml:"llm_weight"`
	SemanticTopK   int     `yaml:"semantic_top_k"`
	SemanticMinSim float64 `yaml:"semantic_min_similarity"`
	HNSWM          int     `yaml:"hnsw_m"`
	HNSWEFConstruct int    `yaml:"hnsw_ef_construction"`
}

// RankingConfig holds scoring and ranking settings.
type RankingConfig struct {
	FavoriteBoost float64 `yaml:"favorite_boost"`
	MaxResults    int     `yaml:"max_results"`
	TopDishes     int     `yaml:"top_dishes"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "llama-3.1-8b-instant"
	}
	if c.LLM.TimeoutSec <= 0 {
		c.LLM.TimeoutSec = 20
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-small"
	}
	if c.Embedding.Dimensions <= 0 {
		c.Embedding.Dimensions = 1536
	}
	if c.Discovery.BaseURL == "" {
		c.Discovery.BaseURL = "https://api.yelp.com/v3"
	}
	if c.Discovery.TimeoutSec <= 0 {
		c.Discovery.TimeoutSec = 15
	}
	if c.Discovery.Limit <= 0 {
		c.Discovery.Limit = 20
	}
	if c.Discovery.DefaultLocation == "" {
		c.Discovery.DefaultLocation = "San Francisco, CA"
	}
	if c.Discovery.RetryDelaySec <= 0 {
		c.Discovery.RetryDelaySec = 1
	}
	if c.Inference.KeywordWeight <= 0 {
		c.Inference.KeywordWeight = 0.4
	}
	if c.Inference.SemanticWeight <= 0 {
		c.Inference.SemanticWeight = 0.4
	}
	if c.Inference.LLMWeight <= 0 {
		c.Inference.LLMWeight = 0.2
	}
	if c.Inference.SemanticTopK <= 0 {
		c.Inference.SemanticTopK = 5
	}
	if c.Inference.SemanticMinSim <= 0 {
		c.Inference.SemanticMinSim = 0.3
	}
	if c.Inference.HNSWM <= 0 {
		c.Inference.HNSWM = 16
	}
	if c.Inference.HNSWEFConstruct <= 0 {
		c.Inference.HNSWEFConstruct = 200
	}
	if c.Ranking.FavoriteBoost <= 0 {
		c.Ranking.FavoriteBoost = 0.15
	}
	if c.Ranking.MaxResults <= 0 {
		c.Ranking.MaxResults = 10
	}
	if c.Ranking.TopDishes <= 0 {
		c.Ranking.TopDishes = 3
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	sum := c.Inference.KeywordWeight + c.Inference.SemanticWeight + c.Inference.LLMWeight
	if sum <= 0 {
		return fmt.Errorf("inference strategy weights must sum to a positive value, got %f", sum)
	}
	if c.Ranking.FavoriteBoost > 1 {
		return fmt.Errorf("ranking.favorite_boost must be at most 1, got %f", c.Ranking.FavoriteBoost)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
