package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataSource string
	DataDir    string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MySQLDSN   string
	SQLitePath string

	ListenAddr   string
	TopStates    int
	TopCustomers int
	SegmentTier  string

	ExportDir  string
	ChromeBin  string
	MaxRetries int
	LogDebug   bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", "csv")),
		DataDir:    getEnv("DATA_DIR", "./dashboard"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "dashboard"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "dashboard"),
		PostgresDB:       getEnv("POSTGRES_DB", "ecommerce"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MySQLDSN:   getEnv("MYSQL_DSN", ""),
		SQLitePath: getEnv("SQLITE_PATH", "./dashboard/ecommerce.db"),

		ListenAddr:   getEnv("LISTEN_ADDR", ":8501"),
		TopStates:    getEnvInt("TOP_STATES", 5),
		TopCustomers: getEnvInt("TOP_CUSTOMERS", 5),
		SegmentTier:  getEnv("SEGMENT_TIER", "Sangat tinggi"),

		ExportDir:  getEnv("EXPORT_DIR", "./output"),
		ChromeBin:  getEnv("CHROME_BIN", ""),
		MaxRetries: getEnvInt("MAX_RETRIES", 3),
		LogDebug:   getEnvBool("LOG_DEBUG", true),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
