package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address string        `yaml:"address" env:"TM_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"TM_TIMEOUT" env-default:"5s"`
}

type Config struct {
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	HTTP        HTTPConfig    `yaml:"http_server"`
	StoragePath string        `yaml:"storage_path" env:"TM_STORAGE_PATH" env-default:"tasks.db"`
	LoginDelay  time.Duration `yaml:"login_delay" env:"TM_LOGIN_DELAY" env-default:"600ms"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	// empty path - env only
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	// try the file, fall back to env when it does not exist
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
