package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"insights-backend/domain/records"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// One table per entity
	ContentTable     string
	URLMappingTable  string
	InsightTable     string
	ImplicationTable string
	SummaryTable     string
	MetadataTable    string
	QATable          string

	// Outbound regeneration API
	RegenerationBaseURL string
	RegenerationTimeout time.Duration

	// Messaging and metrics
	EventBusName     string
	MetricsNamespace string

	// Lambda configuration
	IsLambda bool

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		ContentTable:     getEnv("CONTENT_TABLE", "content"),
		URLMappingTable:  getEnv("URL_MAPPING_TABLE", "url-mappings"),
		InsightTable:     getEnv("INSIGHT_TABLE", "insights"),
		ImplicationTable: getEnv("IMPLICATION_TABLE", "implications"),
		SummaryTable:     getEnv("SUMMARY_TABLE", "summaries"),
		MetadataTable:    getEnv("METADATA_TABLE", "metadata"),
		QATable:          getEnv("QA_TABLE", "qa-records"),

		RegenerationBaseURL: getEnv("REGENERATION_API_URL", "http://localhost:9090"),
		RegenerationTimeout: time.Duration(getEnvInt("REGENERATION_TIMEOUT_SECONDS", 30)) * time.Second,

		EventBusName:     getEnv("EVENT_BUS_NAME", ""),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "insights-backend"),

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "insights-backend"),

		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.RegenerationBaseURL == "" {
			return fmt.Errorf("REGENERATION_API_URL is required in production")
		}
	}
	if c.RegenerationTimeout <= 0 {
		return fmt.Errorf("REGENERATION_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// TableFor resolves the table name for an entity type
func (c *Config) TableFor(entity records.EntityType) string {
	switch entity {
	case records.EntityContent:
		return c.ContentTable
	case records.EntityURLMapping:
		return c.URLMappingTable
	case records.EntityInsight:
		return c.InsightTable
	case records.EntityImplication:
		return c.ImplicationTable
	case records.EntitySummary:
		return c.SummaryTable
	case records.EntityMetadata:
		return c.MetadataTable
	case records.EntityQA:
		return c.QATable
	}
	return string(entity)
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
