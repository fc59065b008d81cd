package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, optionally
// seeded from an env file for local development
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "greentrip-api")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("APP_BASE_URL", "http://localhost:9990")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "greentrip")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "greentrip")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_EMAIL_TOPIC", "emails.verification")
	v.SetDefault("NSQ_BOOKING_TOPIC", "bookings.events")
	v.SetDefault("NSQ_WORKER_CHANNEL", "greentrip")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "greentrip-api")

	v.SetDefault("EMISSIONS_REPORT_CACHE_TTL", 120)

	v.SetDefault("RATE_LIMIT_AUTH_PER_MINUTE", 5)
	v.SetDefault("RATE_LIMIT_SEARCH_PER_MINUTE", 30)
	v.SetDefault("RATE_LIMIT_EMISSIONS_PER_MINUTE", 100)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.BaseURL = v.GetString("APP_BASE_URL")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.EmailTopic = v.GetString("NSQ_EMAIL_TOPIC")
	configs.NSQ.BookingTopic = v.GetString("NSQ_BOOKING_TOPIC")
	configs.NSQ.WorkerChannel = v.GetString("NSQ_WORKER_CHANNEL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Emissions.ReportCacheTTLSeconds = v.GetInt("EMISSIONS_REPORT_CACHE_TTL")

	configs.RateLimit.AuthPerMinute = v.GetInt("RATE_LIMIT_AUTH_PER_MINUTE")
	configs.RateLimit.SearchPerMinute = v.GetInt("RATE_LIMIT_SEARCH_PER_MINUTE")
	configs.RateLimit.EmissionsPerMinute = v.GetInt("RATE_LIMIT_EMISSIONS_PER_MINUTE")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
