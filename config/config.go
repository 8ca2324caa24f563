package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Upstream portal
	Pronote PronoteConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowOrigins []string
}

// PronoteConfig configures the upstream portal and the per-operation
// budgets threaded into the fetch core at construction time. Nothing in
// the core reads ambient process state.
type PronoteConfig struct {
	URL            string
	Mock           bool // bypass the portal entirely, serve canned empty data
	IncludeContent bool // fetch the costlier per-lesson content fields

	RateLimitPerMin int
	WorkerCapacity  int

	Timeouts TimeoutConfig
}

// TimeoutConfig carries one budget per upstream operation plus the
// network timeout applied to each individual portal call.
type TimeoutConfig struct {
	Login    time.Duration
	Notes    time.Duration
	Lessons  time.Duration
	Next7    time.Duration
	Homework time.Duration
	HTTP     time.Duration
}

// minWorkerCapacity is the smallest usable worker pool: the login and
// the four fetch tasks of a single request all hold a slot concurrently.
const minWorkerCapacity = 5

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: comma-separated list so env overrides stay simple
	var origins []string
	for _, o := range strings.Split(viper.GetString("cors.allow_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORS.AllowOrigins = origins

	// Pronote portal
	cfg.Pronote.URL = viper.GetString("pronote.url")
	cfg.Pronote.Mock = viper.GetBool("pronote.mock")
	cfg.Pronote.IncludeContent = viper.GetBool("pronote.include_content")
	cfg.Pronote.RateLimitPerMin = viper.GetInt("pronote.rate_limit_per_min")
	cfg.Pronote.WorkerCapacity = viper.GetInt("pronote.worker_capacity")
	// One request needs the login plus four fetch tasks in flight at
	// once; anything smaller makes them starve each other in the slot
	// queue and time out spuriously.
	if cfg.Pronote.WorkerCapacity < minWorkerCapacity {
		cfg.Pronote.WorkerCapacity = minWorkerCapacity
	}
	if portalURL := viper.GetString("pronote_url"); portalURL != "" {
		cfg.Pronote.URL = portalURL
	}

	cfg.Pronote.Timeouts.Login = viper.GetDuration("pronote.timeouts.login")
	cfg.Pronote.Timeouts.Notes = viper.GetDuration("pronote.timeouts.notes")
	cfg.Pronote.Timeouts.Lessons = viper.GetDuration("pronote.timeouts.lessons")
	cfg.Pronote.Timeouts.Next7 = viper.GetDuration("pronote.timeouts.next7")
	cfg.Pronote.Timeouts.Homework = viper.GetDuration("pronote.timeouts.homework")
	cfg.Pronote.Timeouts.HTTP = viper.GetDuration("pronote.timeouts.http")

	if !cfg.Pronote.Mock && cfg.Pronote.URL == "" {
		return nil, fmt.Errorf("pronote.url is required unless mock mode is enabled")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allow_origins", "*")

	viper.SetDefault("pronote.mock", false)
	viper.SetDefault("pronote.include_content", false)
	viper.SetDefault("pronote.rate_limit_per_min", 60)
	viper.SetDefault("pronote.worker_capacity", 8)
	viper.SetDefault("pronote.timeouts.login", "10s")
	viper.SetDefault("pronote.timeouts.notes", "6s")
	viper.SetDefault("pronote.timeouts.lessons", "6s")
	viper.SetDefault("pronote.timeouts.next7", "4s")
	viper.SetDefault("pronote.timeouts.homework", "4s")
	viper.SetDefault("pronote.timeouts.http", "6s")
}
