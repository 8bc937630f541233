package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Chain    ChainConfig
	Lottery  LotteryConfig
	Treasury TreasuryConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// ChainConfig holds execution-host configuration
type ChainConfig struct {
	HostURL  string
	APIKey   string
	MockHost bool
}

// LotteryConfig holds lottery engine configuration
type LotteryConfig struct {
	OwnerAddress    string
	CustodyAddress  string
	MaxParticipants int
}

// TreasuryConfig holds treasury fee configuration
type TreasuryConfig struct {
	FeeRateBps int64
}

// Load loads configuration from environment variables and config files
func Load(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "stakedraw")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Chain.HostURL", "http://localhost:8545")
	viper.SetDefault("Chain.MockHost", true)
	viper.SetDefault("Lottery.OwnerAddress", "owner")
	viper.SetDefault("Lottery.CustodyAddress", "pool-custody")
	viper.SetDefault("Lottery.MaxParticipants", 50)
	viper.SetDefault("Treasury.FeeRateBps", 100) // 1% over the 10,000 basis
	viper.SetDefault("LogLevel", "info")
}
