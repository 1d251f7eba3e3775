package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Risk      RiskConfig      `mapstructure:"risk"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
	UseInMemory bool   `mapstructure:"use_in_memory"`
}

type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type RulesConfig struct {
	// EmergencyKeywords overrides the catalog's emergency entry keywords.
	// Kept separate from risk.keywords: the catalog entry redirects the
	// conversation, the risk list triggers outbound alerts.
	EmergencyKeywords []string `mapstructure:"emergency_keywords"`
}

type RiskConfig struct {
	Keywords []string `mapstructure:"keywords"`
}

type AlertsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	TelegramToken string `mapstructure:"telegram_token"`
	CareChatID    int64  `mapstructure:"care_chat_id"`
}

type AuthConfig struct {
	// Tokens maps bearer tokens to "userID:email" identities.
	Tokens map[string]string `mapstructure:"tokens"`
}

type RemindersConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	// Remove leading slash from path to get database name
	dbName := strings.TrimPrefix(u.Path, "/")

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.use_in_memory", false)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.timeout", 15*time.Second)
	v.SetDefault("alerts.enabled", false)
	v.SetDefault("reminders.sweep_interval", time.Minute)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %v", err)
		}
		config.Database = dbConfig
	}

	// Get other environment variables
	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	if token := v.GetString("ALERT_TELEGRAM_TOKEN"); token != "" {
		config.Alerts.TelegramToken = token
	}

	return &config, nil
}
