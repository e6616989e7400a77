package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DogAPI DogAPIConfig
	Quiz   QuizConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DogAPIConfig configures the upstream breed catalog and image provider.
// Timeout bounds every upstream call; a stalled fetch surfaces as a
// transient failure instead of hanging the invocation.
type DogAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout time.Duration
}

type QuizConfig struct {
	DefaultCount       int `yaml:"default_count"`
	OptionsPerQuestion int `yaml:"options_per_question"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("dogapi.base_url", "https://dog.ceo/api")
	viper.SetDefault("dogapi.timeout", 10)
	viper.SetDefault("quiz.default_count", 5)
	viper.SetDefault("quiz.options_per_question", 4)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover everything; only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DogAPI: DogAPIConfig{
			BaseURL: viper.GetString("dogapi.base_url"),
			Timeout: viper.GetDuration("dogapi.timeout") * time.Second,
		},
		Quiz: QuizConfig{
			DefaultCount:       viper.GetInt("quiz.default_count"),
			OptionsPerQuestion: viper.GetInt("quiz.options_per_question"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if baseURL := os.Getenv("DOG_API_BASE_URL"); baseURL != "" {
		config.DogAPI.BaseURL = baseURL
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}

	return config, nil
}
