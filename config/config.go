package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = ".testclock.yaml"
	DefaultTextFile = "total_test_time.txt"
	DefaultCSVFile  = "test_times.csv"
)

type Config struct {
	Dir           string        `yaml:"dir"`
	Pattern       string        `yaml:"pattern"`
	Target        *TargetConfig `yaml:"target"`
	TotalWorkTime string        `yaml:"totalWorkTime"`
	Output        *OutputConfig `yaml:"output"`
	Export        *ExportConfig `yaml:"export"`
	Log           *LogConfig    `yaml:"log"`
}

// TargetConfig describes the float target. Reference is the anchor in
// completion mode and the deadline in start mode.
type TargetConfig struct {
	Mode      string `yaml:"mode"`
	Time      string `yaml:"time"`
	Reference string `yaml:"reference"`
}

type OutputConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

type ExportConfig struct {
	TextFile string `yaml:"textFile"`
	CSVFile  string `yaml:"csvFile"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Load(path string) (*Config, error) {
	var useDefaultConf bool
	useDefaultConf = (path == "")

	if useDefaultConf {
		path = DefaultPath
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return &conf, nil // return an empty config
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return &conf, nil
}

func (c *Config) TextFile() string {
	if c.Export != nil && c.Export.TextFile != "" {
		return c.Export.TextFile
	}
	return DefaultTextFile
}

func (c *Config) CSVFile() string {
	if c.Export != nil && c.Export.CSVFile != "" {
		return c.Export.CSVFile
	}
	return DefaultCSVFile
}

// HasTarget reports whether a target time is configured.
func (c *Config) HasTarget() bool {
	return c.Target != nil && c.Target.Time != ""
}

func (c *Config) OutputParam(key string) (string, bool) {
	if c.Output == nil || c.Output.Params == nil {
		return "", false
	}
	v, ok := c.Output.Params[key]
	return v, ok
}
