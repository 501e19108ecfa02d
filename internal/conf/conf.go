package conf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kanengo/church/internal/log"
)

type RateLimit struct {
	// Capacity of zero disables rate limiting.
	Capacity int64         `yaml:"capacity"`
	FillRate time.Duration `yaml:"fillRate"`
}

type Server struct {
	Addr      string        `yaml:"addr"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit RateLimit     `yaml:"rateLimit"`
}

type Branches struct {
	True  string `yaml:"onTrue"`
	False string `yaml:"onFalse"`
}

type Config struct {
	Server   Server     `yaml:"server"`
	Branches Branches   `yaml:"branches"`
	Log      log.Config `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Addr:    "127.0.0.1:9000",
			Timeout: 3 * time.Second,
			RateLimit: RateLimit{
				FillRate: 10 * time.Millisecond,
			},
		},
		Branches: Branches{
			True:  "True branch",
			False: "False branch",
		},
		Log: log.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, then applies CHURCH_* environment overrides.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("CHURCH_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := os.Getenv("CHURCH_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("server.timeout must not be negative: %s", c.Server.Timeout)
	}
	if c.Server.RateLimit.Capacity < 0 {
		return fmt.Errorf("server.rateLimit.capacity must not be negative: %d", c.Server.RateLimit.Capacity)
	}
	if c.Server.RateLimit.Capacity > 0 && c.Server.RateLimit.FillRate <= 0 {
		return fmt.Errorf("server.rateLimit.fillRate must be positive: %s", c.Server.RateLimit.FillRate)
	}
	return nil
}
