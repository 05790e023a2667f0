package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	DatabaseDSN string `env:"POSTGRES_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	Session Session

	StoreTimeout   time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
	AdminUsernames []string      `env:"ADMIN_USERNAMES" envSeparator:","`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Media Media
	Mail  Mail
}

// Session configures the signed login cookie.
type Session struct {
	Secret       string        `env:"SESSION_SECRET,required"`
	CookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"token"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"8h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"true"`
}

// Media configures the S3-compatible host product images are pushed to.
type Media struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	PublicURL string `env:"S3_PUBLIC_URL"`
	Folder    string `env:"MEDIA_FOLDER" envDefault:"otaku-store"`
}

type Mail struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	ContactEmail   string `env:"CONTACT_EMAIL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Session.Secret) < 32 {
		return errors.New("config: SESSION_SECRET must be at least 32 characters")
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("config: STORE_TIMEOUT must be positive")
	}
	return nil
}
