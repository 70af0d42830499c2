// Package config carga la configuración desde YAML (opcional) y la pisa con env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath se usa cuando CONFIG_PATH no está seteado.
const DefaultPath = "config.yaml"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"

	ImagesFS    = "fs"
	ImagesMinio = "minio"
)

type Config struct {
	Port string `yaml:"port"`

	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Redis   RedisConfig   `yaml:"redis"`
	Images  ImagesConfig  `yaml:"images"`
	Mocks   MocksConfig   `yaml:"mocks"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type StorageConfig struct {
	Driver        string `yaml:"driver"`
	PostgresDSN   string `yaml:"postgresDSN"`
	MongoURI      string `yaml:"mongoURI"`
	MongoDatabase string `yaml:"mongoDatabase"`
}

type AuthConfig struct {
	JWTSecret  string `yaml:"jwtSecret"`
	SessionTTL string `yaml:"sessionTTL"`
	CookieName string `yaml:"cookieName"`
}

// RedisConfig: si Addr está vacío las revocaciones de sesión quedan en memoria.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ImagesConfig struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`

	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioBucket    string `yaml:"minioBucket"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`
	MinioPublicURL string `yaml:"minioPublicURL"`
}

type MocksConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default devuelve una config usable en desarrollo: todo en memoria.
func Default() Config {
	return Config{
		Port: "8080",
		Log:  LogConfig{Level: "info", Format: "text", App: "adoptme"},
		Storage: StorageConfig{
			Driver:        StorageMemory,
			MongoDatabase: "adoptme",
		},
		Auth: AuthConfig{
			JWTSecret:  "coderSecret",
			SessionTTL: "1h",
			CookieName: "coderCookie",
		},
		Images: ImagesConfig{Driver: ImagesFS, Dir: "public/img", MinioBucket: "pets"},
		Mocks:  MocksConfig{Enabled: true},
	}
}

// Load lee path (o CONFIG_PATH, o config.yaml). Si el archivo no existe se sigue
// con defaults + env; cualquier otro error de lectura o parseo se devuelve.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setBool := func(dst *bool, key string) {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	setString(&cfg.Port, "PORT")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Log.App, "APP_NAME")

	setString(&cfg.Storage.Driver, "STORAGE_DRIVER")
	setString(&cfg.Storage.PostgresDSN, "DB_DSN")
	setString(&cfg.Storage.MongoURI, "MONGO_URL")
	setString(&cfg.Storage.MongoDatabase, "MONGO_DB")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.SessionTTL, "JWT_TTL")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}

	setString(&cfg.Images.Driver, "IMAGES_DRIVER")
	setString(&cfg.Images.Dir, "IMAGES_DIR")
	setString(&cfg.Images.MinioEndpoint, "MINIO_ENDPOINT")
	setString(&cfg.Images.MinioAccessKey, "MINIO_ACCESS_KEY")
	setString(&cfg.Images.MinioSecretKey, "MINIO_SECRET_KEY")
	setString(&cfg.Images.MinioBucket, "MINIO_BUCKET")
	setString(&cfg.Images.MinioPublicURL, "MINIO_PUBLIC_URL")
	setBool(&cfg.Images.MinioUseSSL, "MINIO_USE_SSL")

	setBool(&cfg.Mocks.Enabled, "MOCKS_ENABLED")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("config: storage.postgresDSN is required for postgres (set DB_DSN)")
		}
	case StorageMongo:
		if c.Storage.MongoURI == "" {
			return errors.New("config: storage.mongoURI is required for mongo (set MONGO_URL)")
		}
		if c.Storage.MongoDatabase == "" {
			return errors.New("config: storage.mongoDatabase is required for mongo (set MONGO_DB)")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("config: auth.jwtSecret is required (set JWT_SECRET)")
	}
	if _, err := c.SessionTTL(); err != nil {
		return err
	}

	switch c.Images.Driver {
	case ImagesFS:
		if c.Images.Dir == "" {
			return errors.New("config: images.dir is required for fs images")
		}
	case ImagesMinio:
		if c.Images.MinioEndpoint == "" || c.Images.MinioBucket == "" {
			return errors.New("config: images.minioEndpoint and images.minioBucket are required for minio")
		}
	default:
		return fmt.Errorf("config: unknown images driver %q", c.Images.Driver)
	}

	return nil
}

// SessionTTL parsea auth.sessionTTL; vacío equivale a 1h.
func (c Config) SessionTTL() (time.Duration, error) {
	if c.Auth.SessionTTL == "" {
		return time.Hour, nil
	}
	d, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("config: invalid auth.sessionTTL: %w", err)
	}
	if d <= 0 {
		return 0, errors.New("config: auth.sessionTTL must be > 0")
	}
	return d, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) CookieName() string {
	if c.Auth.CookieName == "" {
		return "coderCookie"
	}
	return c.Auth.CookieName
}
