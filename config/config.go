package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Stripe       StripeConfig       `mapstructure:"stripe"`
	Webhook      WebhookConfig      `mapstructure:"webhook"`
	Notification NotificationConfig `mapstructure:"notification"`
	Email        EmailConfig        `mapstructure:"email"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	AES          AESConfig          `mapstructure:"aes"`
	Admin        AdminConfig        `mapstructure:"admin"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig backs the processed-event cache, send locks and rate limiter.
type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	OpTimeout   time.Duration `mapstructure:"op_timeout"` // read and write
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StripeConfig holds billing provider credentials.
type StripeConfig struct {
	SecretKey          string        `mapstructure:"secret_key"`     // empty disables provider lookups
	WebhookSecret      string        `mapstructure:"webhook_secret"` // whsec_...
	SignatureTolerance time.Duration `mapstructure:"signature_tolerance"`
}

// WebhookConfig controls event ingestion.
type WebhookConfig struct {
	HandlerTimeout time.Duration `mapstructure:"handler_timeout"`
	ClaimLease     time.Duration `mapstructure:"claim_lease"`
	ProcessedTTL   time.Duration `mapstructure:"processed_ttl"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	RateLimit      int64         `mapstructure:"rate_limit"` // requests per minute per source IP
}

// NotificationConfig controls the notification gate and reminder windows.
type NotificationConfig struct {
	LockTTL       time.Duration    `mapstructure:"lock_ttl"`
	TrialWindow   time.Duration    `mapstructure:"trial_window"`
	RenewalWindow time.Duration    `mapstructure:"renewal_window"`
	Templates     map[string]int64 `mapstructure:"templates"` // notification kind -> Brevo template id
}

// EmailConfig holds transactional email sender settings.
type EmailConfig struct {
	BrevoAPIKey string `mapstructure:"brevo_api_key"` // empty logs emails instead of sending
	SenderEmail string `mapstructure:"sender_email"`
	SenderName  string `mapstructure:"sender_name"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

// AdminConfig holds the single operator account for the admin read API.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // argon2id encoded hash
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate reports configuration that would make the service unsafe to start.
func (c *Config) Validate() error {
	if c.Stripe.WebhookSecret == "" {
		return errors.New("stripe.webhook_secret is required")
	}
	if c.Stripe.SignatureTolerance <= 0 {
		return errors.New("stripe.signature_tolerance must be positive")
	}
	key, err := hex.DecodeString(c.AES.Key)
	if err != nil || len(key) != 32 {
		return errors.New("aes.key must be 64 hex characters")
	}
	if c.Webhook.ClaimLease <= c.Webhook.HandlerTimeout {
		return errors.New("webhook.claim_lease must exceed webhook.handler_timeout")
	}
	return nil
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first; it never overrides
// variables already present in the environment.
// Environment variables override file values. Prefix: PRC_ (Payment ReConciler).
// Nested keys use underscore: PRC_DATABASE_HOST, PRC_STRIPE_WEBHOOK_SECRET, etc.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PRC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PRC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_reconciler")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "2s")
	v.SetDefault("redis.op_timeout", "500ms")

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.signature_tolerance", "5m")

	v.SetDefault("webhook.handler_timeout", "20s")
	v.SetDefault("webhook.claim_lease", "2m")
	v.SetDefault("webhook.processed_ttl", "72h")
	v.SetDefault("webhook.max_body_bytes", 1<<20)
	v.SetDefault("webhook.rate_limit", 600)

	v.SetDefault("notification.lock_ttl", "2m")
	v.SetDefault("notification.trial_window", "72h")
	v.SetDefault("notification.renewal_window", "168h")
	v.SetDefault("notification.templates", map[string]int64{})

	v.SetDefault("email.brevo_api_key", "")
	v.SetDefault("email.sender_email", "billing@example.com")
	v.SetDefault("email.sender_name", "Billing")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "payment-reconciler")

	v.SetDefault("aes.key", "")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
