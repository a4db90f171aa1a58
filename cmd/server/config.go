package main

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config keys, shared by flags and VTM_ environment variables
const (
	keyGRPCPort         = "grpc-port"
	keyStorage          = "storage"
	keyRedisAddr        = "redis-addr"
	keyRedisPassword    = "redis-password"
	keyRedisDB          = "redis-db"
	keySQLiteDSN        = "sqlite-dsn"
	keyRollHistoryLimit = "roll-history-limit"
	keyRollHistoryTTL   = "roll-history-ttl"
	keyShutdownTimeout  = "shutdown-timeout"
)

// serverConfig is the resolved process configuration
type serverConfig struct {
	GRPCPort         int
	Storage          string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SQLiteDSN        string
	RollHistoryLimit int
	RollHistoryTTL   time.Duration
	ShutdownTimeout  time.Duration
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Int(keyGRPCPort, 50051, "gRPC server port")
	flags.String(keyStorage, StorageMemory, "storage backend: memory, redis or sqlite")
	flags.String(keyRedisAddr, "localhost:6379", "Redis address for the redis backend")
	flags.String(keyRedisPassword, "", "Redis password")
	flags.Int(keyRedisDB, 0, "Redis database number")
	flags.String(keySQLiteDSN, "", "SQLite DSN for the sqlite backend; empty keeps it in memory")
	flags.Int(keyRollHistoryLimit, rolllog.DefaultMaxEntries, "rolls kept per chronicle")
	flags.Duration(keyRollHistoryTTL, 0, "expire idle chronicle history in Redis; 0 keeps it")
	flags.Duration(keyShutdownTimeout, 30*time.Second, "graceful shutdown limit")
}

func loadServerConfig(v *viper.Viper) (*serverConfig, error) {
	cfg := &serverConfig{
		GRPCPort:         v.GetInt(keyGRPCPort),
		Storage:          v.GetString(keyStorage),
		RedisAddr:        v.GetString(keyRedisAddr),
		RedisPassword:    v.GetString(keyRedisPassword),
		RedisDB:          v.GetInt(keyRedisDB),
		SQLiteDSN:        v.GetString(keySQLiteDSN),
		RollHistoryLimit: v.GetInt(keyRollHistoryLimit),
		RollHistoryTTL:   v.GetDuration(keyRollHistoryTTL),
		ShutdownTimeout:  v.GetDuration(keyShutdownTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid server config")
	}
	return cfg, nil
}

// Validate checks the configuration before anything is opened
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange(keyGRPCPort, c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum(keyStorage, c.Storage, []string{StorageMemory, StorageRedis, StorageSQLite}, vb)
	if c.Storage == StorageRedis {
		errors.ValidateRequired(keyRedisAddr, c.RedisAddr, vb)
	}
	errors.ValidateNonNegative(keyRedisDB, c.RedisDB, vb)
	errors.ValidateNonNegative(keyRollHistoryLimit, c.RollHistoryLimit, vb)
	if c.RollHistoryTTL < 0 {
		vb.Field(keyRollHistoryTTL, "must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field(keyShutdownTimeout, "must be positive")
	}

	return vb.Build()
}
