package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	DatabaseURL string `env:"DATABASE_URL"`
	DBPath      string `env:"DB_PATH"`

	// HTTP
	BaseURL       string `env:"BASE_URL"`
	StaticDir     string `env:"STATIC_DIR"`
	SecureCookies bool   `env:"SECURE_COOKIES"`

	// Sessions
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL"`
	RedisURL      string        `env:"REDIS_URL"`

	// Behaviour
	PasswordHashing      string `env:"PASSWORD_HASHING"`
	EnforceAllowMessages bool   `env:"ENFORCE_ALLOW_MESSAGES"`

	LogLevel string `env:"LOG_LEVEL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "строка подключения к postgres (пусто: sqlite файл)")
	flag.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "путь к sqlite файлу")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "каталог статики")
	flag.BoolVar(&cfg.SecureCookies, "secure-cookies", cfg.SecureCookies, "ставить cookie с флагом Secure")
	flag.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "секрет для подписи JWT сессий")
	flag.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "время жизни сессии")
	flag.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "redis URL для хранения сессий")
	flag.StringVar(&cfg.PasswordHashing, "password-hashing", cfg.PasswordHashing, "схема хранения паролей: plain или bcrypt")
	flag.BoolVar(&cfg.EnforceAllowMessages, "enforce-allow-messages", cfg.EnforceAllowMessages, "запрещать сообщения пользователям с выключенным allow_messages")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования")

	flag.Parse()

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "iceplant.db"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-key"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	if cfg.PasswordHashing == "" {
		cfg.PasswordHashing = "plain"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// BaseURL только в виде "address:port" (без схемы и пути), иначе значение по умолчанию
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	return cfg
}

// DatabaseDSN то, что передаётся в repo.InitDB: postgres DSN, если задан, иначе путь к sqlite.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DBPath
}
