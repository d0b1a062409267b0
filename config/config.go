package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"hotel-frontdesk/utils"
)

const (
	DriverFile  = "file"
	DriverMySQL = "mysql"

	DefaultTotalRooms = 15
)

type Config struct {
	Port          string
	DataDir       string
	TotalRooms    int
	StorageDriver string
	CORSOrigins   []string
	DBLogLevel    string
	GinMode       string
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (Config, error) {
	totalRooms, err := utils.EnvIntOrDefault("HOTEL_TOTAL_ROOMS", DefaultTotalRooms)
	if err != nil {
		return Config{}, err
	}
	if totalRooms < 0 {
		return Config{}, fmt.Errorf("HOTEL_TOTAL_ROOMS must not be negative, got %d", totalRooms)
	}

	driver := strings.ToLower(utils.EnvOrDefault("STORAGE_DRIVER", DriverFile))
	if driver != DriverFile && driver != DriverMySQL {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", driver, DriverFile, DriverMySQL)
	}

	return Config{
		Port:          utils.EnvOrDefault("PORT", "8080"),
		DataDir:       utils.EnvOrDefault("HOTEL_DATA_DIR", "data"),
		TotalRooms:    totalRooms,
		StorageDriver: driver,
		CORSOrigins:   ParseCORSOrigins(utils.EnvOrDefault("CORS_ORIGINS", "")),
		DBLogLevel:    utils.EnvOrDefault("DB_LOG_LEVEL", "warn"),
		GinMode:       utils.EnvOrDefault("GIN_MODE", ""),
	}, nil
}

// ParseCORSOrigins splits a comma-separated origin list; empty means "*".
func ParseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
