// Package config loads node defaults from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/cycloid"
	"github.com/gogpu/geonode/project"
)

// EnvPrefix prefixes environment overrides, e.g. GEONODE_CYCLOID_RADIUS1.
const EnvPrefix = "GEONODE"

// Config holds the node defaults used when a parameter is not given
// explicitly.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Cycloid   CycloidConfig   `mapstructure:"cycloid"`
	Projector ProjectorConfig `mapstructure:"projector"`
}

// LogConfig configures the slog handler installed by the command.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CycloidConfig mirrors cycloid.Params with enumerations spelled as text.
type CycloidConfig struct {
	Radius1    float64 `mapstructure:"radius1"`
	Radius2    float64 `mapstructure:"radius2"`
	Period1    float64 `mapstructure:"period1"`
	Period2    float64 `mapstructure:"period2"`
	Offset1    float64 `mapstructure:"offset1"`
	Offset2    float64 `mapstructure:"offset2"`
	Time       float64 `mapstructure:"time"`
	Start      float64 `mapstructure:"start"`
	Resolution int     `mapstructure:"resolution"`
	Centering  string  `mapstructure:"centering"`
	Closed     bool    `mapstructure:"closed"`
	Broadcast  string  `mapstructure:"broadcast"`
}

// ProjectorConfig mirrors project.Settings. Origin, when set, moves the
// projection screen and must have three components. Rotate turns it by
// degrees about X, then Z.
type ProjectorConfig struct {
	Mode     string    `mapstructure:"mode"`
	Distance float64   `mapstructure:"distance"`
	Limit    float64   `mapstructure:"limit"`
	Origin   []float64 `mapstructure:"origin"`
	Rotate   []float64 `mapstructure:"rotate"`
}

// SetDefaults registers the node defaults with v.
func SetDefaults(v *viper.Viper) {
	p := cycloid.DefaultParams()
	v.SetDefault("log.level", "warn")

	v.SetDefault("cycloid.radius1", p.Radius1)
	v.SetDefault("cycloid.radius2", p.Radius2)
	v.SetDefault("cycloid.period1", p.Period1)
	v.SetDefault("cycloid.period2", p.Period2)
	v.SetDefault("cycloid.offset1", p.Offset1)
	v.SetDefault("cycloid.offset2", p.Offset2)
	v.SetDefault("cycloid.time", p.Time)
	v.SetDefault("cycloid.start", p.Start)
	v.SetDefault("cycloid.resolution", p.Resolution)
	v.SetDefault("cycloid.centering", p.Centering.String())
	v.SetDefault("cycloid.closed", p.Closed)
	v.SetDefault("cycloid.broadcast", geonode.BroadcastStrict.String())

	s := project.DefaultSettings()
	v.SetDefault("projector.mode", s.Mode.String())
	v.SetDefault("projector.distance", s.Distance)
	v.SetDefault("projector.limit", s.Limit)
	v.SetDefault("projector.origin", []float64{0, 0, 0})
	v.SetDefault("projector.rotate", []float64{0, 0})
}

// Load reads the config file at path (YAML, TOML or JSON by extension) on
// top of the node defaults, then applies GEONODE_* environment overrides.
// An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Params converts the cycloid section to generator parameters.
func (c CycloidConfig) Params() (cycloid.Params, error) {
	centering, err := cycloid.ParseCentering(c.Centering)
	if err != nil {
		return cycloid.Params{}, fmt.Errorf("config: cycloid: %w", err)
	}
	return cycloid.Params{
		Radius1:    c.Radius1,
		Radius2:    c.Radius2,
		Period1:    c.Period1,
		Period2:    c.Period2,
		Offset1:    c.Offset1,
		Offset2:    c.Offset2,
		Time:       c.Time,
		Start:      c.Start,
		Resolution: c.Resolution,
		Centering:  centering,
		Closed:     c.Closed,
	}, nil
}

// BroadcastPolicy parses the cycloid broadcast policy.
func (c CycloidConfig) BroadcastPolicy() (geonode.BroadcastPolicy, error) {
	p, err := geonode.ParseBroadcastPolicy(c.Broadcast)
	if err != nil {
		return 0, fmt.Errorf("config: cycloid: %w", err)
	}
	return p, nil
}

// Settings converts the projector section to projection settings.
func (c ProjectorConfig) Settings() (project.Settings, error) {
	mode, err := project.ParseMode(c.Mode)
	if err != nil {
		return project.Settings{}, fmt.Errorf("config: projector: %w", err)
	}
	s := project.DefaultSettings()
	s.Mode = mode
	s.Distance = c.Distance
	s.Limit = c.Limit
	switch len(c.Origin) {
	case 0:
	case 3:
		s.Screen = geonode.Translate4(c.Origin[0], c.Origin[1], c.Origin[2])
	default:
		return project.Settings{}, fmt.Errorf("config: projector origin has %d components, want 3", len(c.Origin))
	}
	switch len(c.Rotate) {
	case 0:
	case 2:
		rx := c.Rotate[0] * math.Pi / 180
		rz := c.Rotate[1] * math.Pi / 180
		s.Screen = s.Screen.Multiply(geonode.RotateZ4(rz)).Multiply(geonode.RotateX4(rx))
	default:
		return project.Settings{}, fmt.Errorf("config: projector rotate has %d components, want 2", len(c.Rotate))
	}
	return s, nil
}

// SlogLevel parses the log level ("debug", "info", "warn", "error").
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
