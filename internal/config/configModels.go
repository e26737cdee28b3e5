package config

import "time"

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HttpServer HttpServerConfig `yaml:"httpServer"`
	Storage    StorageConfig    `yaml:"storage"`
	Auth       AuthConfig       `yaml:"auth"`
	Unsplash   UnsplashConfig   `yaml:"unsplash"`
}

type HttpServerConfig struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost"`
	Port        string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idleTimeout" env-default:"60s"`
}

// StorageConfig selects the key-value backend: "file" keeps one file per
// key under Dir, "postgres" uses the kv table, "memory" is volatile.
type StorageConfig struct {
	Backend string   `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`
	Dir     string   `yaml:"dir" env:"STORAGE_DIR" env-default:"./data"`
	DB      DBConfig `yaml:"db"`
}

type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"postgres"`
	User     string `yaml:"user" env:"DB_USER" env-default:"user"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"password"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret" env:"AUTH_SECRET" env-default:"demo-secret"`
	TokenTTL time.Duration `yaml:"tokenTTL" env:"AUTH_TOKEN_TTL" env-default:"24h"`
}

type UnsplashConfig struct {
	AccessKey string `yaml:"accessKey" env:"UNSPLASH_ACCESS_KEY" env-default:""`
}
