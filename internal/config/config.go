package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	EmailDeliverySES      = "ses"
	EmailDeliveryRabbitMQ = "rabbitmq"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"8000"`
	Secret     string `env:"SECRET,required,notEmpty"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required,notEmpty"`

	RabbitmqURL        string `env:"RABBITMQ_URL"`
	RabbitmqEmailQueue string `env:"RABBITMQ_EMAIL_QUEUE" envDefault:"email.ready"`
	EmailDelivery      string `env:"EMAIL_DELIVERY" envDefault:"ses"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER,required,notEmpty"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PasswordResetRateLimitPerHour uint16 `env:"PASSWORD_RESET_RATE_LIMIT_PER_HOUR" envDefault:"5"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EmailDelivery {
	case EmailDeliverySES:
	case EmailDeliveryRabbitMQ:
		if c.RabbitmqURL == "" {
			return fmt.Errorf("RABBITMQ_URL must be set when EMAIL_DELIVERY is %q", EmailDeliveryRabbitMQ)
		}
	default:
		return fmt.Errorf("invalid EMAIL_DELIVERY value %q", c.EmailDelivery)
	}
	if c.PasswordResetRateLimitPerHour == 0 {
		return fmt.Errorf("PASSWORD_RESET_RATE_LIMIT_PER_HOUR must be positive")
	}
	return nil
}

func (c *Config) UsesEmailQueue() bool {
	return c.EmailDelivery == EmailDeliveryRabbitMQ
}
