package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Quarmire/chord/util"
)

// Config is the top level settings file.
type Config struct {
	Ring    RingConfig    `toml:"ring"`
	Server  ServerConfig  `toml:"server"`
	Tracing TracingConfig `toml:"tracing"`
	Log     LogConfig     `toml:"log"`
}

type RingConfig struct {
	MaxID        uint64 `toml:"max_id"`
	Seed         uint64 `toml:"seed"` // 0 seeds from the clock
	InitialNodes int    `toml:"initial_nodes"`
}

type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type TracingConfig struct {
	Enabled        bool   `toml:"enabled"`
	ServiceName    string `toml:"service_name"`
	JaegerEndpoint string `toml:"jaeger_endpoint"`
}

type LogConfig struct {
	File      string `toml:"file"`
	Verbosity int    `toml:"verbosity"`
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

const maxKeyspace = uint64(1) << 32

func Default() *Config {
	return &Config{
		Ring: RingConfig{
			MaxID:        util.DefaultMaxID,
			InitialNodes: 1,
		},
		Server: ServerConfig{
			Addr:            "localhost:3030",
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Tracing: TracingConfig{
			ServiceName:    "chord",
			JaegerEndpoint: "http://localhost:14268/api/traces",
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
// The result is not validated; callers apply their overrides and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Ring.MaxID == 0 || c.Ring.MaxID > maxKeyspace {
		return fmt.Errorf("ring.max_id must be in [1, %d], got %d", maxKeyspace, c.Ring.MaxID)
	}
	if c.Ring.InitialNodes < 0 || uint64(c.Ring.InitialNodes) > c.Ring.MaxID {
		return fmt.Errorf("ring.initial_nodes must be in [0, %d], got %d", c.Ring.MaxID, c.Ring.InitialNodes)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr cannot be empty")
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		return errors.New("server.shutdown_timeout cannot be negative")
	}
	if c.Tracing.Enabled && c.Tracing.JaegerEndpoint == "" {
		return errors.New("tracing.jaeger_endpoint is required when tracing is enabled")
	}
	return nil
}
