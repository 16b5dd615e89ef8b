package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Razorpay RazorpayConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
	// Pre-provisioned plan ids keyed by duration code. Empty entries are
	// created on demand through the API.
	PlanIDs map[string]string
}

type EmailConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
}

func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "appuser"),
			Password: getEnv("DB_PASSWORD", "apppassword"),
			DBName:   getEnv("DB_NAME", "sj_fitness"),
		},
		Razorpay: RazorpayConfig{
			KeyID:         getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret:     getEnv("RAZORPAY_KEY_SECRET", ""),
			WebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
			PlanIDs: map[string]string{
				"1m":  getEnv("RAZORPAY_PLAN_1M", ""),
				"3m":  getEnv("RAZORPAY_PLAN_3M", ""),
				"6m":  getEnv("RAZORPAY_PLAN_6M", ""),
				"12m": getEnv("RAZORPAY_PLAN_12M", ""),
			},
		},
		Email: EmailConfig{
			APIKey:    getEnv("MAILERSEND_API_KEY", ""),
			FromName:  getEnv("MAILER_FROM_NAME", "SJ Fitness"),
			FromEmail: getEnv("MAILER_FROM_EMAIL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
