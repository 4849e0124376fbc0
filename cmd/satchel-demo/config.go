package main

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mkruglov/satchel"
)

type Config struct {
	Production bool        `yaml:"Production"`
	FibLimit   int         `yaml:"FibLimit"`
	Fetch      FetchConfig `yaml:"Fetch"`
}

type FetchConfig struct {
	URL       string `yaml:"URL"`
	Delay     string `yaml:"Delay"`
	Timeout   string `yaml:"Timeout"`
	CacheSize int    `yaml:"CacheSize"`
}

func loadConfig() (*Config, error) {
	path := flag.String("config", "config.yaml", "path to the yaml config")
	flag.Parse()

	cfg := Config{
		FibLimit: 10,
		Fetch:    FetchConfig{URL: "https://api.example.com/data"},
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}

		return nil, errors.Wrapf(err, "could not read config %s", *path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %s", *path)
	}

	return &cfg, nil
}

func (fc FetchConfig) fetcherConfig() (satchel.FetcherConfig, error) {
	var out satchel.FetcherConfig
	var err error

	if fc.Delay != "" {
		out.Delay, err = time.ParseDuration(fc.Delay)
		if err != nil {
			return out, errors.Wrapf(err, "invalid fetch delay %q", fc.Delay)
		}
	}

	if fc.Timeout != "" {
		out.Timeout, err = time.ParseDuration(fc.Timeout)
		if err != nil {
			return out, errors.Wrapf(err, "invalid fetch timeout %q", fc.Timeout)
		}
	}

	out.CacheSize = fc.CacheSize

	return out, nil
}
