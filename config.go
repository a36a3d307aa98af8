// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".baltree.yaml"

type RangeConfig struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

type DemoConfig struct {
	Insert []int       `yaml:"insert"`
	Delete []int       `yaml:"delete"`
	Range  RangeConfig `yaml:"range"`
	Depth  int         `yaml:"depth"`
}

type StressConfig struct {
	Operations    int     `yaml:"operations"`
	KeySpace      int     `yaml:"key_space"`
	Seed          int64   `yaml:"seed"`
	CheckEvery    int     `yaml:"check_every"`
	BloomCapacity uint    `yaml:"bloom_capacity"`
	BloomFPRate   float64 `yaml:"bloom_fp_rate"`
}

type ShellConfig struct {
	Prompt        string        `yaml:"prompt"`
	DepthCacheTTL time.Duration `yaml:"depth_cache_ttl"`
	MaxOutput     int64         `yaml:"max_output"`
}

type UIConfig struct {
	ShowHeights bool `yaml:"show_heights"`
}

type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Stress StressConfig `yaml:"stress"`
	Shell  ShellConfig  `yaml:"shell"`
	UI     UIConfig     `yaml:"ui"`
}

var defaultConfig = Config{
	Demo: DemoConfig{
		Insert: []int{9, 5, 10, 0, 6, 11, -1, 1, 2},
		Delete: []int{10, 11},
		Range:  RangeConfig{Low: 1, High: 9},
		Depth:  6,
	},
	Stress: StressConfig{
		Operations:    10000,
		KeySpace:      5000,
		Seed:          1,
		CheckEvery:    100,
		BloomCapacity: 20000,
		BloomFPRate:   0.01,
	},
	Shell: ShellConfig{
		Prompt:        "avl> ",
		DepthCacheTTL: 5 * time.Minute,
		MaxOutput:     64 * 1024,
	},
	UI: UIConfig{
		ShowHeights: true,
	},
}

// DefaultConfig returns a fresh copy of the built-in settings.
func DefaultConfig() *Config {
	c := defaultConfig
	c.Demo.Insert = append([]int(nil), defaultConfig.Demo.Insert...)
	c.Demo.Delete = append([]int(nil), defaultConfig.Demo.Delete...)
	return &c
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the configuration at path, or at ~/.baltree.yaml if path is
// empty. Settings missing from the file keep their defaults. A missing file is
// not an error; an unreadable or malformed one returns the defaults together
// with the error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating a default
// configuration file at path first if none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "baltree configuration\n")
	fmt.Fprintf(w, "═════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
