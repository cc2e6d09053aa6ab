package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config — конфигурация движка генерации планов. Читается из
// config.yaml и/или переменных окружения (DATABASE_HOST, AI_API_KEY...).
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
}

// DatabaseConfig — подключение к каталогу упражнений (PostgreSQL)
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AIConfig — сервис генерации текста (Gemini-совместимый API)
type AIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	MaxRetries      int           `mapstructure:"max_retries"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"` // начальная задержка, далее удваивается
	Timeout         time.Duration `mapstructure:"timeout"`     // стенной таймаут одной попытки
	Temperature     float64       `mapstructure:"temperature"`
	TopP            float64       `mapstructure:"top_p"`
	TopK            int           `mapstructure:"top_k"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
}

// Load читает конфигурацию из файла и переменных окружения
func Load(path string) (*Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "workout_db")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("ai.base_url", "https://api.avalai.ir")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.max_retries", 3)
	v.SetDefault("ai.retry_delay", "5s")
	v.SetDefault("ai.timeout", "120s")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.top_p", 0.9)
	v.SetDefault("ai.top_k", 40)
	v.SetDefault("ai.max_output_tokens", 8192)

	if err := v.ReadInConfig(); err != nil {
		// Файл необязателен: конфигурация может прийти целиком из окружения
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры. Ошибка здесь фатальна на
// старте: без ключа API и каталога генерировать планы невозможно.
func (c *Config) Validate() error {
	if c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key не задан (переменная AI_API_KEY)")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name не задан")
	}
	if c.AI.MaxRetries < 1 {
		return fmt.Errorf("ai.max_retries должен быть >= 1, получено %d", c.AI.MaxRetries)
	}
	return nil
}

// DSN возвращает строку подключения к базе данных
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
