package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerPort int

	DatabaseURL string
	LogLevel    string

	// KafkaBrokers empty means activity events are not published.
	KafkaBrokers []string

	// SeedFile points at a CSV of products (name,price,description);
	// empty means the built-in demo list is used.
	SeedFile string
}

func Load() Config {
	return Config{
		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		KafkaBrokers: SplitCSV(os.Getenv("KAFKA_BROKERS")),
		SeedFile:     os.Getenv("PRODUCT_SEED_FILE"),
	}
}

func SplitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
