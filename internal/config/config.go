package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	ExtractorURL string
	CORSOrigins  string

	// MaxFPS caps how many frames per second are analyzed per session.
	MaxFPS int

	BackendReportURL  string
	BackendTimeoutSec int
	ShutdownDrainSec  int

	MaxConnections   int
	MaxMessageSizeMB int
	LogLevel         string
	Environment      string

	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func (p *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.DBHost, p.DBPort, p.DBUser, p.DBPassword, p.DBName, p.DBSSLMode)
}

// DSNForLog renders the DSN without the password so it is safe to log.
func (p *Config) DSNForLog() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		p.DBHost, p.DBPort, p.DBUser, p.DBName, p.DBSSLMode)
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func LoadConfig() *Config {
	// .env is optional, system environment wins when the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "10000"),
		ExtractorURL:      getEnv("EXTRACTOR_URL", "localhost:50051"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		MaxFPS:            getEnvInt("MAX_FPS", 10),
		BackendReportURL:  getEnv("BACKEND_REPORT_URL", "https://backend.local/save_credibility_score.php"),
		BackendTimeoutSec: getEnvInt("BACKEND_TIMEOUT_SEC", 10),
		ShutdownDrainSec:  getEnvInt("SHUTDOWN_DRAIN_SEC", 5),
		MaxConnections:    getEnvInt("MAX_CONNECTIONS", 1000),
		MaxMessageSizeMB:  getEnvInt("MAX_MESSAGE_SIZE_MB", 50),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		Environment:       getEnv("ENVIRONMENT", "production"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "ai_proctor"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.MaxFPS <= 0 {
		fmt.Println("WARNING: MAX_FPS must be positive, using default: 10")
		cfg.MaxFPS = 10
	}
	if cfg.DBPassword == "" {
		fmt.Println("WARNING: DB_PASSWORD is not set!")
	}
	if cfg.DBName == "" {
		fmt.Println("WARNING: DB_NAME is not set, using default: ai_proctor")
		cfg.DBName = "ai_proctor"
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}
