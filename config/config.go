package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream reservation provider.
	UpstreamBaseURL        string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamAPIKey         string `mapstructure:"UPSTREAM_API_KEY"`
	UpstreamClientID       string `mapstructure:"UPSTREAM_CLIENT_ID"`
	UpstreamClientSecret   string `mapstructure:"UPSTREAM_CLIENT_SECRET"`
	UpstreamRefreshToken   string `mapstructure:"UPSTREAM_REFRESH_TOKEN"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// The single property this deployment serves.
	PropertyID       string `mapstructure:"PROPERTY_ID"`
	PropertyTimezone string `mapstructure:"PROPERTY_TIMEZONE"`

	// MongoDB configuration.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB      int    `mapstructure:"REDIS_AUTH_DB"`
	RedisOTPDB       int    `mapstructure:"REDIS_OTP_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Outbound mail (OTP delivery).
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// Firebase service account for dashboard push delivery.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("UPSTREAM_BASE_URL", "https://api.bookingprovider.example/v2")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PROPERTY_TIMEZONE", "Asia/Dhaka")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_OTP_DB", 2)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 3)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout returns the per-call deadline applied to every upstream
// provider request. A breached deadline is reported as an unreachable upstream.
func UpstreamTimeout() time.Duration {
	secs := AppConfig.UpstreamTimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// PropertyLocation resolves the property's civil timezone. All calendar
// arithmetic is anchored here, never to the host timezone.
func PropertyLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.PropertyTimezone)
	if err != nil {
		log.Fatalf("Invalid PROPERTY_TIMEZONE %q: %v", AppConfig.PropertyTimezone, err)
	}
	return loc
}
