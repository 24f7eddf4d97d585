package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ClinicConfig carries scheduling policy knobs.
//
// CancelledFreesSlot controls whether a cancelled appointment keeps occupying
// its (date, time) slot. Historically it does, so the default is false.
type ClinicConfig struct {
	DefaultDurationMinutes int
	WorkingHours           []string
	CancelledFreesSlot     bool
}

// Bookable slot grid: morning and afternoon blocks, lunch break between
// 11:30 and 14:00.
var defaultWorkingHours = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	defaultDuration := viper.GetInt("CLINIC_DEFAULT_DURATION_MINUTES")
	if defaultDuration <= 0 {
		defaultDuration = 30
	}

	workingHours := defaultWorkingHours
	if raw := viper.GetString("CLINIC_WORKING_HOURS"); raw != "" {
		workingHours = nil
		for _, slot := range strings.Split(raw, ",") {
			if slot = strings.TrimSpace(slot); slot != "" {
				workingHours = append(workingHours, slot)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Clinic: ClinicConfig{
			DefaultDurationMinutes: defaultDuration,
			WorkingHours:           workingHours,
			CancelledFreesSlot:     viper.GetBool("CLINIC_CANCELLED_FREES_SLOT"),
		},
	}

	return config, nil
}
