// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env          string
	Addr         string
	TeachersPath string
	GoalsPath    string
	RequestsPath string
	BookingsPath string
	SampleSize   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads environment variables, optionally seeded from a .env file, and populates a Config struct.
func Load() *Config {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load(".env")

	sampleSize, err := strconv.Atoi(getEnv("SAMPLE_SIZE", "6"))
	if err != nil || sampleSize < 0 {
		log.Panicf("Invalid SAMPLE_SIZE: %q", os.Getenv("SAMPLE_SIZE"))
	}

	readTimeout, err := time.ParseDuration(getEnv("READ_TIMEOUT", "5s"))
	if err != nil {
		log.Panicf("Invalid READ_TIMEOUT: %v", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("WRITE_TIMEOUT", "10s"))
	if err != nil {
		log.Panicf("Invalid WRITE_TIMEOUT: %v", err)
	}

	return &Config{
		Env:          getEnv("ENV", "development"),
		Addr:         getEnv("ADDR", ":8080"),
		TeachersPath: getEnv("TEACHERS_PATH", "data/teachers.json"),
		GoalsPath:    getEnv("GOALS_PATH", "data/goals.json"),
		RequestsPath: getEnv("REQUESTS_PATH", "data/request.json"),
		BookingsPath: getEnv("BOOKINGS_PATH", "data/booking.json"),
		SampleSize:   sampleSize,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
