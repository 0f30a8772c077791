package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address       string `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	LogLvl        string `env:"LOG_LVL"        envDefault:"info"`
	JWTSecret     string `env:"JWT_SECRET"     envDefault:"dev-secret"`
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"noobru"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"boss"`
}

func New() *Config {
	godotenv.Load()

	cfg := &Config{}
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
