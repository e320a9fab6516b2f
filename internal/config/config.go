package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Cache struct {
	// ValidityMinutes is the window during which a cached product payload
	// is served without a fresh upstream fetch.
	ValidityMinutes int `json:"validity_minutes"`
}

type Awesome struct {
	Endpoint             string `json:"endpoint"`
	TimeoutSec           int    `json:"timeout_sec"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
	Burst                int    `json:"burst"`
}

type BCB struct {
	Endpoint   string `json:"endpoint"`
	TimeoutSec int    `json:"timeout_sec"`
}

type Brapi struct {
	Endpoint   string `json:"endpoint"`
	Token      string `json:"token"`
	TimeoutSec int    `json:"timeout_sec"`
}

type News struct {
	FeedURL    string `json:"feed_url"`
	TimeoutSec int    `json:"timeout_sec"`
	MaxItems   int    `json:"max_items"`
}

type Config struct {
	Server  Server  `json:"server"`
	Log     Log     `json:"log"`
	Cache   Cache   `json:"cache"`
	Awesome Awesome `json:"awesome"`
	BCB     BCB     `json:"bcb"`
	Brapi   Brapi   `json:"brapi"`
	News    News    `json:"news"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8000", RequestTimeoutSec: 15},
		Log:    Log{Level: "info"},
		Cache:  Cache{ValidityMinutes: 60},
		Awesome: Awesome{
			Endpoint:             "https://economia.awesomeapi.com.br",
			TimeoutSec:           5,
			MaxRequestsPerMinute: 30,
			Burst:                5,
		},
		BCB: BCB{
			Endpoint:   "https://api.bcb.gov.br",
			TimeoutSec: 10,
		},
		Brapi: Brapi{
			Endpoint:   "https://brapi.dev",
			TimeoutSec: 5,
		},
		News: News{
			FeedURL:    "https://news.google.com/rss/search?q=economia+brasil&hl=pt-BR&gl=BR&ceid=BR:pt-419",
			TimeoutSec: 10,
			MaxItems:   20,
		},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("CACHE_VALIDITY_MIN"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Cache.ValidityMinutes = x
		}
	}
	if v := os.Getenv("AWESOME_ENDPOINT"); v != "" {
		cfg.Awesome.Endpoint = v
	}
	if v := os.Getenv("AWESOME_MAX_RPM"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Awesome.MaxRequestsPerMinute = x
		}
	}
	if v := os.Getenv("BCB_ENDPOINT"); v != "" {
		cfg.BCB.Endpoint = v
	}
	if v := os.Getenv("BRAPI_ENDPOINT"); v != "" {
		cfg.Brapi.Endpoint = v
	}
	if v := os.Getenv("BRAPI_TOKEN"); v != "" {
		cfg.Brapi.Token = v
	}
	if v := os.Getenv("NEWS_FEED_URL"); v != "" {
		cfg.News.FeedURL = v
	}
	if v := os.Getenv("NEWS_MAX_ITEMS"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.News.MaxItems = x
		}
	}
}
