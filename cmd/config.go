package cmd

import (
	"fmt"
	"strings"
	"time"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/jobs"
	"quickdrop/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	IdentityProvider  string
	FirebaseKey       string
	JWTSecret         string
	StripeSecretKey   string
	PaymentCurrency   string
	RedisURL          string
	RoleCacheTTL      time.Duration
	RabbitMQURL       string
	EventsExchange    string
	ReconcileSchedule string
}

// LoadConfig reads the process environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "5000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("IDENTITY_PROVIDER", IdentityProviderFirebase)
	v.SetDefault("PAYMENT_CURRENCY", "bdt")
	v.SetDefault("ROLE_CACHE_TTL", authz.DefaultRoleTTL)
	v.SetDefault("EVENTS_EXCHANGE", "parcel_events")
	v.SetDefault("RECONCILE_SCHEDULE", jobs.DefaultReconcileSchedule)

	cfg := Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		DBSslMode:         v.GetString("DB_SSLMODE"),
		IdentityProvider:  strings.ToLower(strings.TrimSpace(v.GetString("IDENTITY_PROVIDER"))),
		FirebaseKey:       v.GetString("FB_KEY"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		StripeSecretKey:   v.GetString("STRIPE_SECRET_KEY"),
		PaymentCurrency:   v.GetString("PAYMENT_CURRENCY"),
		RedisURL:          v.GetString("REDIS_URL"),
		RoleCacheTTL:      v.GetDuration("ROLE_CACHE_TTL"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		EventsExchange:    v.GetString("EVENTS_EXCHANGE"),
		ReconcileSchedule: v.GetString("RECONCILE_SCHEDULE"),
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings needed at start-up are present.
func (c Config) Validate() error {
	switch c.IdentityProvider {
	case IdentityProviderFirebase:
		if c.FirebaseKey == "" {
			return errs.NewValueIsRequiredError("FB_KEY")
		}
	case IdentityProviderJWT:
		if c.JWTSecret == "" {
			return errs.NewValueIsRequiredError("JWT_SECRET")
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"IDENTITY_PROVIDER",
			fmt.Errorf("%q is not one of %s, %s", c.IdentityProvider, IdentityProviderFirebase, IdentityProviderJWT),
		)
	}
	if c.DBName == "" {
		return errs.NewValueIsRequiredError("DB_NAME")
	}
	if c.StripeSecretKey == "" {
		return errs.NewValueIsRequiredError("STRIPE_SECRET_KEY")
	}
	return nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
