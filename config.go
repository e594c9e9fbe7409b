package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// ReadConfig reads a yaml config file on top of the default config.
// A missing file yields the defaults.
func ReadConfig(file string) (Config, error) {
	var config Config
	if err := defaults.Set(&config); err != nil {
		return config, err
	}
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("config file not found, using defaults", "file", file)
	case err != nil:
		return config, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	return config, nil
}

func (self Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(self)
}

type Config struct {
	Source     SourceOptions `yaml:"source"`
	BuildGraph bool          `yaml:"build-graph"`
	Raster     RasterOptions `yaml:"raster"`
	Server     ServerOptions `yaml:"server"`
}

type SourceOptions struct {
	OSM      string `yaml:"osm" default:"./data/berkeley.osm" validate:"required"`
	Snapshot string `yaml:"snapshot" default:"./graphs/berkeley.json" validate:"required"`
}

type RasterOptions struct {
	Root     BoxOptions `yaml:"root"`
	TileSize int        `yaml:"tile-size" default:"256" validate:"gt=0"`
	MaxDepth int        `yaml:"max-depth" default:"7" validate:"gte=0,lte=30"`
}

type BoxOptions struct {
	ULLon float64 `yaml:"ullon" default:"-122.2998046875" validate:"gte=-180,lte=180,ltfield=LRLon"`
	ULLat float64 `yaml:"ullat" default:"37.892195547244356" validate:"gte=-90,lte=90,gtfield=LRLat"`
	LRLon float64 `yaml:"lrlon" default:"-122.2119140625" validate:"gte=-180,lte=180"`
	LRLat float64 `yaml:"lrlat" default:"37.82280243352756" validate:"gte=-90,lte=90"`
}

type ServerOptions struct {
	Addr     string `yaml:"addr" default:":4567" validate:"required"`
	LogLevel string `yaml:"log-level" default:"info" validate:"oneof=debug info warn error"`
}

func (self ServerOptions) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(self.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
