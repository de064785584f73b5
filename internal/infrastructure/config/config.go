// Package config reads the service configuration from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORAGE_DRIVER: memory | redis | dynamodb | postgres | none (default: memory)
//   - CATALOG_NAMESPACE (default: catalogo), PAINEL_NAMESPACE (default: painel)
//   - LOCALDB_KEY (default: local_db)
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
//   - POSTGRES_DSN
//   - CORS_ORIGINS: comma separated, "*" allows any origin
//   - PUBLIC_RATE_PER_MIN: form submissions per minute and client (default: 20)
//   - KAFKA_BROKERS, KAFKA_TOPIC
//
// DynamoDB settings (AWS_REGION, DYNAMODB_ENDPOINT, STORAGE_TABLE) are read by
// the database and storage packages.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

type Config struct {
	Port             int
	StorageDriver    string
	CatalogNamespace string
	PainelNamespace  string
	LocalDBKey       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	CORSOrigins      []string
	PublicRatePerMin int

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() (Config, error) {
	cfg := Config{
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", DriverMemory)),
		CatalogNamespace: getenvDefault("CATALOG_NAMESPACE", "catalogo"),
		PainelNamespace:  getenvDefault("PAINEL_NAMESPACE", "painel"),
		LocalDBKey:       getenvDefault("LOCALDB_KEY", "local_db"),
		RedisAddr:        getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		PostgresDSN:      os.Getenv("POSTGRES_DSN"),
		CORSOrigins:      splitList(getenvDefault("CORS_ORIGINS", "*")),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       getenvDefault("KAFKA_TOPIC", "orcamentos.novos"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.PublicRatePerMin, err = getenvInt("PUBLIC_RATE_PER_MIN", 20); err != nil {
		return Config{}, err
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverRedis, DriverDynamoDB, DriverNone:
	case DriverPostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required for the postgres storage driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
