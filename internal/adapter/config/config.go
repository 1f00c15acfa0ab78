package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

type Config struct {
	Database   *Database
	HTTP       *HTTP
	Allocation *Allocation
	App        *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Allocation struct {
	PointsMethodID string `env:"POINTS_METHOD_ID"`
}

// Bind registers the command line flags that back conf. Flag values are the
// defaults; Parse overlays environment variables on top of them.
func Bind(flags *pflag.FlagSet) *Config {
	var db Database
	var http HTTP
	var allocation Allocation
	var app App

	flags.StringVarP(&db.DSN, "database", "d", "", "Database string, empty disables the allocation archive")
	flags.StringVarP(&http.HostString, "address", "a", `localhost:8080`, "HTTP server endpoint")
	flags.StringVar(&allocation.PointsMethodID, "points-id", "POINTS", "Id of the loyalty points payment method")
	flags.StringVarP(&app.LogLevel, "log-level", "l", `error`, "Log level")
	flags.StringVarP(&app.Mode, "mode", "m", AppModeDevelop, "PROD / DEV")

	return &Config{
		Database:   &db,
		HTTP:       &http,
		Allocation: &allocation,
		App:        &app,
	}
}

func (c *Config) Parse() error {
	err := env.Parse(c.Database)
	if err != nil {
		return fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(c.HTTP)
	if err != nil {
		return fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(c.App)
	if err != nil {
		return fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(c.Allocation)
	if err != nil {
		return fmt.Errorf("error parsing allocation config: %w", err)
	}
	return nil
}

// NewConfig parses args and the environment into a Config.
func NewConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("payopt", pflag.ContinueOnError)
	conf := Bind(flags)
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if err := conf.Parse(); err != nil {
		return nil, err
	}
	return conf, nil
}
