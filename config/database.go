package config

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dbConfigByEnv reads the <ENV>_DB_* variables of the selected environment.
func dbConfigByEnv(env string) DBConfig {
	prefix := strings.ToUpper(env) + "_DB_"
	return DBConfig{
		User:     os.Getenv(prefix + "USER"),
		Password: os.Getenv(prefix + "PASSWORD"),
		Host:     os.Getenv(prefix + "HOST"),
		Port:     GetEnv(prefix+"PORT", "5432"),
		Name:     os.Getenv(prefix + "NAME"),
		SSLMode:  GetEnv("DB_SSLMODE", "require"),
	}
}

// DSN renders the connection string. Timestamps are stored as epoch
// milliseconds, so the session time zone is pinned to UTC.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// ConnectDB opens the postgres pool and checks it answers.
func ConnectDB(cfg DBConfig, verbose bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s@%s/%s: %w", cfg.User, cfg.Host, cfg.Name, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s/%s: %w", cfg.Host, cfg.Name, err)
	}
	return db, nil
}
