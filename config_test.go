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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) returned error: %v", path, err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("LoadConfig of a missing file = %+v; want defaults", config)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name:    "partial file keeps defaults",
			content: "demo:\n  depth: 9\nshell:\n  depth_cache_ttl: 30s\n",
			check: func(t *testing.T, c *Config) {
				if c.Demo.Depth != 9 {
					t.Errorf("Demo.Depth = %d; want 9", c.Demo.Depth)
				}
				if !reflect.DeepEqual(c.Demo.Insert, defaultConfig.Demo.Insert) {
					t.Errorf("Demo.Insert = %v; want %v", c.Demo.Insert, defaultConfig.Demo.Insert)
				}
				if c.Shell.DepthCacheTTL != 30*time.Second {
					t.Errorf("Shell.DepthCacheTTL = %v; want 30s", c.Shell.DepthCacheTTL)
				}
				if c.Shell.Prompt != defaultConfig.Shell.Prompt {
					t.Errorf("Shell.Prompt = %q; want %q", c.Shell.Prompt, defaultConfig.Shell.Prompt)
				}
			},
		},
		{
			name:    "stress section",
			content: "stress:\n  operations: 50\n  key_space: 10\n  seed: 7\n",
			check: func(t *testing.T, c *Config) {
				if c.Stress.Operations != 50 || c.Stress.KeySpace != 10 || c.Stress.Seed != 7 {
					t.Errorf("Stress = %+v; want operations 50, key space 10, seed 7", c.Stress)
				}
				if c.Stress.CheckEvery != defaultConfig.Stress.CheckEvery {
					t.Errorf("Stress.CheckEvery = %d; want default %d", c.Stress.CheckEvery, defaultConfig.Stress.CheckEvery)
				}
			},
		},
		{
			name:    "malformed file falls back to defaults",
			content: "demo: [",
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if !reflect.DeepEqual(c, DefaultConfig()) {
					t.Errorf("config = %+v; want defaults", c)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			config, err := LoadConfig(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("LoadConfig error = %v; wantErr %v", err, tc.wantErr)
			}
			if config == nil {
				t.Fatal("LoadConfig returned nil config")
			}
			tc.check(t, config)
		})
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	c := DefaultConfig()
	c.Demo.Insert[0] = 1000
	if defaultConfig.Demo.Insert[0] == 1000 {
		t.Error("modifying DefaultConfig() changed the built-in defaults")
	}
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baltree.yaml")

	var out strings.Builder
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if !strings.Contains(out.String(), "newly created") {
		t.Errorf("expected output to mention the new file, got:\n%s", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig of created file returned error: %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("created config = %+v; want defaults", config)
	}

	out.Reset()
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("second displaySettings returned error: %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("existing file reported as newly created")
	}
}
