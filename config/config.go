package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Verifier   VerifierConfig   `mapstructure:"verifier"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Pool       PoolConfig       `mapstructure:"pool"`
	Employer   EmployerConfig   `mapstructure:"employer"`
	Log        LogConfig        `mapstructure:"log"`
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

// VerifierConfig points at the groth16 verification key and bounds the
// latency of a single verification call.
type VerifierConfig struct {
	KeyPath string        `mapstructure:"key_path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SettlementConfig bounds a single wage claim.
type SettlementConfig struct {
	MinWage int64 `mapstructure:"min_wage"` // base units
	MaxWage int64 `mapstructure:"max_wage"`
}

// PoolConfig holds the liquidity pool's tunable parameters.
// Rates are expressed in basis points (1 bps = 0.01%).
type PoolConfig struct {
	MaxUtilizationBps     int64         `mapstructure:"max_utilization_bps"`
	BaseFeeBps            int64         `mapstructure:"base_fee_bps"`
	MaxFeeBps             int64         `mapstructure:"max_fee_bps"`
	FeeKinkBps            int64         `mapstructure:"fee_kink_bps"`
	AnnualYieldBps        int64         `mapstructure:"annual_yield_bps"`
	PerformanceFeeBps     int64         `mapstructure:"performance_fee_bps"`
	EarlyWithdrawalFeeBps int64         `mapstructure:"early_withdrawal_fee_bps"`
	MinLockPeriod         time.Duration `mapstructure:"min_lock_period"`
}

// EmployerConfig holds the trust store's tunable parameters.
type EmployerConfig struct {
	MinStake        int64         `mapstructure:"min_stake"`
	DefaultScore    int64         `mapstructure:"default_score"`
	DecayPerDay     int64         `mapstructure:"decay_per_day"`
	StakeLockPeriod time.Duration `mapstructure:"stake_lock_period"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ZWS_ (ZK Wage Settlement).
// Nested keys use underscore: ZWS_DATABASE_HOST, ZWS_POOL_MIN_LOCK_PERIOD, etc.
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
	v.SetDefault("database.dbname", "wage_settlement")
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
	v.SetDefault("jwt.issuer", "zkwage-settlement")
	v.SetDefault("verifier.key_path", "keys/wage_claim.vkey")
	v.SetDefault("verifier.timeout", "5s")
	v.SetDefault("settlement.min_wage", 100)
	v.SetDefault("settlement.max_wage", 10_000_000)
	v.SetDefault("pool.max_utilization_bps", 9500)
	v.SetDefault("pool.base_fee_bps", 10)
	v.SetDefault("pool.max_fee_bps", 300)
	v.SetDefault("pool.fee_kink_bps", 8000)
	v.SetDefault("pool.annual_yield_bps", 400)
	v.SetDefault("pool.performance_fee_bps", 1000)
	v.SetDefault("pool.early_withdrawal_fee_bps", 50)
	v.SetDefault("pool.min_lock_period", "168h")
	v.SetDefault("employer.min_stake", 5000)
	v.SetDefault("employer.default_score", 500)
	v.SetDefault("employer.decay_per_day", 1)
	v.SetDefault("employer.stake_lock_period", "720h")
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

	// Environment variables: ZWS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ZWS")
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
