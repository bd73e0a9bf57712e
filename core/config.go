package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string
	Address         string
	ShutdownTimeout time.Duration
}

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (local; default), TEST, QA, PROD
	Build    string
	AppName  string

	RollbarToken string

	// CompletionSignalTTL is how long a completion highlight stays pending
	// before the presentation layer stops seeing it.
	CompletionSignalTTL time.Duration

	Server ServerConfig
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Dood")
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddress", ":8080")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("completionSignalTTL", time.Second)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:               conf.GetBool("debug"),
		TestMode:            conf.GetBool("testMode"),
		Env:                 env,
		Build:               conf.GetString("build"),
		AppName:             conf.GetString("appName"),
		RollbarToken:        conf.GetString("rollbarToken"),
		CompletionSignalTTL: conf.GetDuration("completionSignalTTL"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Address:         conf.GetString("serverAddress"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
	}
}
