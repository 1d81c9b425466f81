package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     App     `mapstructure:"app"`
	AI      AI      `mapstructure:"ai"`
	Mix     Mix     `mapstructure:"mix"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug   bool   `mapstructure:"debug"`
	DataDir string `mapstructure:"data_dir"`
}

// AI holds the content-generation collaborator configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Mix holds Power Mode defaults
type Mix struct {
	DefaultFilter string `mapstructure:"default_filter"` // Initial type filter ("all" or an insight type)
	DefaultRecipe string `mapstructure:"default_recipe"` // Recipe preselected in the TUI, if any
}

// Logging holds logging configuration
type Logging struct {
	Level string `mapstructure:"level"`
}

var globalConfig *Config

// Load loads the configuration from .env, the config file, environment
// variables, and defaults, in the usual viper precedence order.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".insightmix")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", ".insightmix")

	viper.SetDefault("ai.gemini.model", "gemini-1.5-flash")
	viper.SetDefault("ai.gemini.timeout", "30s")
	viper.SetDefault("ai.gemini.max_tokens", 8192)
	viper.SetDefault("ai.gemini.temperature", 0.7)

	viper.SetDefault("mix.default_filter", "all")
	viper.SetDefault("mix.default_recipe", "")

	viper.SetDefault("logging.level", "info")
}

// bindEnvironmentVariables maps well-known environment variables onto
// config keys so they override file values.
func bindEnvironmentVariables() {
	bindEnvKeys("ai.gemini.api_key", []string{"GEMINI_API_KEY", "GOOGLE_AI_API_KEY"})
	bindEnvKeys("app.data_dir", []string{"INSIGHTMIX_DATA_DIR"})
	bindEnvKeys("logging.level", []string{"INSIGHTMIX_LOG_LEVEL"})
}

// bindEnvKeys binds multiple environment variable names to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// validateConfig checks configuration invariants
func validateConfig(config *Config) error {
	if config.App.DataDir == "" {
		return fmt.Errorf("app.data_dir must not be empty")
	}
	if config.AI.Gemini.Temperature < 0 || config.AI.Gemini.Temperature > 2 {
		return fmt.Errorf("ai.gemini.temperature must be in [0, 2], got %v", config.AI.Gemini.Temperature)
	}
	return nil
}

// Convenience accessors for configuration sections
func GetApp() App         { return Get().App }
func GetAI() AI           { return Get().AI }
func GetMix() Mix         { return Get().Mix }
func GetLogging() Logging { return Get().Logging }
