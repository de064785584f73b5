package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("PORT", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("KAFKA_BROKERS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.StorageDriver != DriverMemory || cfg.CatalogNamespace != "catalogo" ||
			cfg.PainelNamespace != "painel" || cfg.LocalDBKey != "local_db" {
			t.Fatalf("unexpected defaults %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) || cfg.KafkaBrokers != nil {
			t.Fatalf("unexpected lists %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Redis")
		t.Setenv("PORT", "9090")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorageDriver != DriverRedis || cfg.Port != 9090 || len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
			t.Fatalf("unexpected config %+v", cfg)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		if _, err := Load(); err == nil {
			t.Fatalf("expected invalid port error")
		}
		t.Setenv("PORT", "")
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected unknown driver error")
		}
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("POSTGRES_DSN", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected missing dsn error")
		}
	})
}
