package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	AppEnv  string `yaml:"APP_ENV"`
	LogFile string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT configuration
	JWTSecret string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

const defaultConfigPath = "config.yaml"

// LoadConfig reads config.yaml, or the file named by CONFIG_PATH.
// A missing file is not fatal: every key falls back to the environment.
func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	if err := LoadConfigFile(path); err != nil {
		log.Warnf("config: %v, falling back to environment", err)
	}
}

func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var parsed Config
	if err := yaml.Unmarshal(file, &parsed); err != nil {
		return err
	}

	config = parsed
	return nil
}

func GetConfig(key string) string {
	if value := configValue(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

func configValue(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetConfigOrDefault returns fallback when key is unset everywhere.
func GetConfigOrDefault(key, fallback string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return fallback
}
