package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SWEETLAYERS_DB_DSN"
	EnvDBHost = "SWEETLAYERS_DB_HOST"
	EnvDBUser = "SWEETLAYERS_DB_USER"
	EnvDBName = "SWEETLAYERS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SWEETLAYERS_APP_ENV" required:"true"`
	Port         string `envconfig:"SWEETLAYERS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SWEETLAYERS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SWEETLAYERS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SWEETLAYERS_DB_DSN"`
	Driver string `envconfig:"SWEETLAYERS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SWEETLAYERS_DB_HOST"`
	LegacyPort     int    `envconfig:"SWEETLAYERS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SWEETLAYERS_DB_USER"`
	LegacyPassword string `envconfig:"SWEETLAYERS_DB_PASSWORD"`
	LegacyName     string `envconfig:"SWEETLAYERS_DB_NAME"`
	LegacySSLMode  string `envconfig:"SWEETLAYERS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SWEETLAYERS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SWEETLAYERS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SWEETLAYERS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SWEETLAYERS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SWEETLAYERS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SWEETLAYERS_REDIS_ADDR"`
	Password     string        `envconfig:"SWEETLAYERS_REDIS_PASSWORD"`
	DB           int           `envconfig:"SWEETLAYERS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SWEETLAYERS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SWEETLAYERS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SWEETLAYERS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SWEETLAYERS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SWEETLAYERS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls where session carts are persisted and for how long.
type CartConfig struct {
	Namespace string        `envconfig:"SWEETLAYERS_CART_NAMESPACE" default:"sweet-layers-cart"`
	TTL       time.Duration `envconfig:"SWEETLAYERS_CART_TTL" default:"720h"`
}

// CheckoutConfig holds the pricing and validation constants applied at order
// creation. TaxRate is applied exactly once, when the order is created.
type CheckoutConfig struct {
	TaxRate          float64 `envconfig:"SWEETLAYERS_CHECKOUT_TAX_RATE" default:"0.08"`
	DeliveryMinDays  int     `envconfig:"SWEETLAYERS_CHECKOUT_DELIVERY_MIN_DAYS" default:"2"`
	DeliveryMaxDays  int     `envconfig:"SWEETLAYERS_CHECKOUT_DELIVERY_MAX_DAYS" default:"30"`
	MessageMaxLength int     `envconfig:"SWEETLAYERS_CHECKOUT_MESSAGE_MAX_LENGTH" default:"50"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SWEETLAYERS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
