package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SHIPBATCH"

const (
	ExportBackendFS = "fs"
	ExportBackendS3 = "s3"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel  string
	LogFormat string

	ExportBackend string
	ExportDir     string

	S3Bucket       string
	S3Prefix       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool

	RetentionSchedule string
	RetentionMaxAge   time.Duration
}

var defaults = map[string]any{
	"http.port":          "8080",
	"db.host":            "localhost",
	"db.port":            "5432",
	"db.user":            "postgres",
	"db.password":        "",
	"db.name":            "shipbatch",
	"db.sslmode":         "disable",
	"log.level":          "info",
	"log.format":         "console",
	"export.backend":     ExportBackendFS,
	"export.dir":         "exports",
	"s3.bucket":          "",
	"s3.prefix":          "",
	"s3.region":          "us-east-1",
	"s3.endpoint":        "",
	"s3.access_key":      "",
	"s3.secret_key":      "",
	"s3.use_path_style":  false,
	"retention.schedule": "0 0 3 * * *",
	"retention.max_age":  30 * 24 * time.Hour,
}

// LoadConfig reads SHIPBATCH_* environment variables. A .env file in the
// working directory is loaded first when present; real environment wins.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// Missing files are fine.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:   v.GetString("http.port"),
		DBHost:     v.GetString("db.host"),
		DBPort:     v.GetString("db.port"),
		DBUser:     v.GetString("db.user"),
		DBPassword: v.GetString("db.password"),
		DBName:     v.GetString("db.name"),
		DBSslMode:  v.GetString("db.sslmode"),

		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),

		ExportBackend: strings.ToLower(v.GetString("export.backend")),
		ExportDir:     v.GetString("export.dir"),

		S3Bucket:       v.GetString("s3.bucket"),
		S3Prefix:       v.GetString("s3.prefix"),
		S3Region:       v.GetString("s3.region"),
		S3Endpoint:     v.GetString("s3.endpoint"),
		S3AccessKey:    v.GetString("s3.access_key"),
		S3SecretKey:    v.GetString("s3.secret_key"),
		S3UsePathStyle: v.GetBool("s3.use_path_style"),

		RetentionSchedule: v.GetString("retention.schedule"),
		RetentionMaxAge:   v.GetDuration("retention.max_age"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error

	if c.DBHost == "" {
		errList = append(errList, errors.New("db host is required"))
	}
	switch c.ExportBackend {
	case ExportBackendFS:
		if c.ExportDir == "" {
			errList = append(errList, errors.New("export dir is required for the fs backend"))
		}
	case ExportBackendS3:
		if c.S3Bucket == "" {
			errList = append(errList, errors.New("s3 bucket is required for the s3 backend"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown export backend %q", c.ExportBackend))
	}
	if c.RetentionMaxAge <= 0 {
		errList = append(errList, errors.New("retention max age must be positive"))
	}

	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
