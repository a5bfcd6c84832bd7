package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	SMTP       SMTP       `yaml:"smtp"`
	Booking    Booking    `yaml:"booking"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"name" env-default:"courtbooker"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	Secret   string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// SMTP credentials come from the environment only. When user or password is
// empty, email notifications are disabled and dispatches are logged instead.
type SMTP struct {
	Host      string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port      int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User      string `env:"SMTP_USER"`
	Password  string `env:"SMTP_PASSWORD"`
	FromName  string `yaml:"from_name" env:"FROM_NAME" env-default:"Court Reservation"`
	FromEmail string `yaml:"from_email" env:"FROM_EMAIL"`
}

type Booking struct {
	MaxActiveReservations int `yaml:"max_active_reservations" env:"MAX_ACTIVE_RESERVATIONS_PER_USER" env-default:"5"`
	MinCancellationHours  int `yaml:"min_cancellation_hours" env:"MIN_CANCELLATION_HOURS" env-default:"2"`
}

// RateLimit applies to the auth endpoints only.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
