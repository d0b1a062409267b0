package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-frontdesk/storage"
	"hotel-frontdesk/utils"
)

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

// ResolveMySQLDSN prefers MYSQL_URL, then DATABASE_URL, then the DB_* parts.
func ResolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_frontdesk")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the MySQL connection and migrates the front desk
// tables.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	dsn, dbName, err := ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormLogLevel(cfg.DBLogLevel),
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ connected to MySQL database %q", dbName)

	if err := storage.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
