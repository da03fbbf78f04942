package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Custody  CustodyConfig  `mapstructure:"custody"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Payroll  PayrollConfig  `mapstructure:"payroll"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
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

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// CustodyConfig points at the external token custody service the
// transfer adapter calls. Requests are HMAC-signed with the secret key.
type CustodyConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	AccessKey string        `mapstructure:"access_key"`
	SecretKey string        `mapstructure:"secret_key"`
	AccountID string        `mapstructure:"account_id"` // the ledger's own custody account
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LedgerConfig holds the fund-ledger policy knobs.
type LedgerConfig struct {
	FeeBps                    int64         `mapstructure:"fee_bps"`
	FeeRecipient              string        `mapstructure:"fee_recipient"` // custody account receiving protocol fees
	MinDeposit                int64         `mapstructure:"min_deposit"`
	BillingsOverflowThreshold int64         `mapstructure:"billings_overflow_threshold"`
	EmergencyDelay            time.Duration `mapstructure:"emergency_delay"`
	GoalBonusAPYBps           int64         `mapstructure:"goal_bonus_apy_bps"`
	GoalMaxHorizon            time.Duration `mapstructure:"goal_max_horizon"`
}

// PayrollConfig holds the payroll policy knobs.
type PayrollConfig struct {
	MinSalary            int64         `mapstructure:"min_salary"`
	MaxSalary            int64         `mapstructure:"max_salary"`
	MaxEmployeesPerBatch int           `mapstructure:"max_employees_per_batch"`
	ScheduleHorizon      time.Duration `mapstructure:"schedule_horizon"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VW_ (Vaultwise).
// Nested keys use underscore: VW_DATABASE_HOST, VW_LEDGER_FEE_BPS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "vaultwise")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "vaultwise")
	v.SetDefault("custody.base_url", "http://localhost:9090")
	v.SetDefault("custody.access_key", "")
	v.SetDefault("custody.secret_key", "")
	v.SetDefault("custody.account_id", "vaultwise-ledger")
	v.SetDefault("custody.timeout", "10s")
	v.SetDefault("ledger.fee_bps", 25)
	v.SetDefault("ledger.fee_recipient", "vaultwise-treasury")
	v.SetDefault("ledger.min_deposit", 100)
	v.SetDefault("ledger.billings_overflow_threshold", 1000000)
	v.SetDefault("ledger.emergency_delay", "24h")
	v.SetDefault("ledger.goal_bonus_apy_bps", 500)
	v.SetDefault("ledger.goal_max_horizon", "43800h") // 5 years
	v.SetDefault("payroll.min_salary", 100)
	v.SetDefault("payroll.max_salary", 1000000000)
	v.SetDefault("payroll.max_employees_per_batch", 100)
	v.SetDefault("payroll.schedule_horizon", "8760h") // 1 year
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
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
