package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	MONGO_URL=mongodb://localhost:27017
//	MONGO_DB=coconut_analytics
//	MONGO_COLLECTION=charcoal_prices
//	PRODUCT=Coconut Shell Charcoal
//	CORS_ORIGINS=*
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Ingest IngestConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// MongoConfig defines connection details for the document store.
type MongoConfig struct {
	URL        string
	Database   string
	Collection string
}

// IngestConfig carries pipeline settings. Product is the target commodity
// every query and row filter is scoped by; it is deliberately
// configuration rather than a compile-time constant so the same pipeline
// can serve other product lines.
type IngestConfig struct {
	Product string
}

// CORSConfig lists the allowed origins; "*" allows all.
type CORSConfig struct {
	AllowedOrigins []string
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "coconut_analytics")
	viper.SetDefault("MONGO_COLLECTION", "charcoal_prices")

	viper.SetDefault("PRODUCT", "Coconut Shell Charcoal")
	viper.SetDefault("CORS_ORIGINS", "*")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URL:        viper.GetString("MONGO_URL"),
			Database:   viper.GetString("MONGO_DB"),
			Collection: viper.GetString("MONGO_COLLECTION"),
		},
		Ingest: IngestConfig{
			Product: viper.GetString("PRODUCT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	validateConfig()
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Mongo.URL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if AppConfig.Mongo.Database == "" {
		missing = append(missing, "MONGO_DB")
	}
	if AppConfig.Mongo.Collection == "" {
		missing = append(missing, "MONGO_COLLECTION")
	}
	if AppConfig.Ingest.Product == "" {
		missing = append(missing, "PRODUCT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
