package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	SeedCount int

	// v1 synthetic load shape; zero values disable the slowdown entirely.
	V1Delay          time.Duration
	V1HashRounds     int
	V1ScratchObjects int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "products.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:             port,
		DBDSN:            dsn,
		LogFile:          logFile,
		SeedCount:        envInt("SEED_COUNT", 500),
		V1Delay:          time.Duration(envInt("V1_DELAY_MS", 400)) * time.Millisecond,
		V1HashRounds:     envInt("V1_HASH_ROUNDS", 400),
		V1ScratchObjects: envInt("V1_SCRATCH_OBJECTS", 2000),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SEED_COUNT=%d V1_DELAY=%s V1_HASH_ROUNDS=%d V1_SCRATCH_OBJECTS=%d",
		cfg.Port, cfg.DBDSN, cfg.SeedCount, cfg.V1Delay, cfg.V1HashRounds, cfg.V1ScratchObjects)
	return cfg
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring %s=%q: not a non-negative integer", key, s)
		return def
	}
	return n
}
