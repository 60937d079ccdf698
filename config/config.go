package config

import "os"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	SecretKey         string
	Port              string
	ExpirationMinutes int
}

type DatabaseConfig struct {
	URL          string
	Host         string
	Username     string
	Password     string
	DatabaseName string
	Port         string
}

var Cfg = Config{}

func (config *Config) Init() {
	config.Server = ServerConfig{
		SecretKey:         os.Getenv("JWT_SECRET"),
		Port:              os.Getenv("PORT"),
		ExpirationMinutes: 120,
	}
	config.Database = DatabaseConfig{
		URL:          os.Getenv("DATABASE_URL"),
		Host:         os.Getenv("DB_HOST"),
		Username:     os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		DatabaseName: os.Getenv("DB_NAME"),
		Port:         os.Getenv("DB_PORT"),
	}
}
