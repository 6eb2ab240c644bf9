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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	configFileName   = ".phonebook.yaml"
	contactsFileName = ".phonebook_contacts"
)

type ContactsConfig struct {
	File         string `yaml:"file"`
	ShowProgress bool   `yaml:"show_progress"`
}

type LookupConfig struct {
	CacheExpiration time.Duration `yaml:"cache_expiration"`
	CacheCleanup    time.Duration `yaml:"cache_cleanup"`
	BloomSize       uint          `yaml:"bloom_size"`
	BloomHashes     uint          `yaml:"bloom_hashes"`
}

type Config struct {
	Contacts ContactsConfig `yaml:"contacts"`
	Lookup   LookupConfig   `yaml:"lookup"`
}

func defaultConfig() Config {
	return Config{
		Contacts: ContactsConfig{
			File:         filepath.Join("~", contactsFileName),
			ShowProgress: false,
		},
		Lookup: LookupConfig{
			CacheExpiration: lookupCacheExpiration,
			CacheCleanup:    lookupCacheCleanup,
			BloomSize:       defaultBloomSize,
			BloomHashes:     defaultBloomHashes,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.phonebook.yaml. A missing file yields the defaults.
func LoadConfig(fs afero.Fs) (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(fs, configPath)
}

// loadConfigFrom decodes the file at path over the defaults, so keys missing
// from the file keep their default values.
func loadConfigFrom(fs afero.Fs, path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return &cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig()
		return &fallback, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

// expandHome resolves a leading "~" against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func createDefaultConfigFile(fs afero.Fs, configPath string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := afero.WriteFile(fs, configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func displaySettings(fs afero.Fs) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists, _ := afero.Exists(fs, configPath)
	if !configExists {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(fs, configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Phonebook Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📒 %s\n", styles.Title.Render("Contacts:"))
	fmt.Printf("  • file: %s\n", expandHome(config.Contacts.File))
	fmt.Printf("  • show_progress: %t\n\n", config.Contacts.ShowProgress)

	fmt.Printf("🔍 %s\n", styles.Title.Render("Lookup:"))
	fmt.Printf("  • cache_expiration: %s\n", config.Lookup.CacheExpiration)
	fmt.Printf("  • cache_cleanup: %s\n", config.Lookup.CacheCleanup)
	fmt.Printf("  • bloom_size: %d\n", config.Lookup.BloomSize)
	fmt.Printf("  • bloom_hashes: %d\n\n", config.Lookup.BloomHashes)
}
