// Package config handles the optional .stubforge.yaml project file.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ProjectConfig represents a .stubforge.yaml file in a project directory.
type ProjectConfig struct {
	Version string `yaml:"version"`

	// Default framework and language for specs that do not set their own
	Framework string `yaml:"framework,omitempty"`
	Language  string `yaml:"language,omitempty"`

	// Default test type applied to spec entries without one
	TestType string `yaml:"test_type,omitempty"`

	// Output directory for generated test files
	OutputDir string `yaml:"output_dir,omitempty"`

	// Spec file discovery patterns
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// DefaultProjectConfig returns sensible defaults.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Version:   "1.0",
		Framework: "pytest",
		TestType:  "unit",
		OutputDir: "generated_tests",
		Include:   []string{"**/*.testspec.json"},
		Exclude: []string{
			"**/node_modules/**",
			"**/vendor/**",
		},
	}
}

// LoadProjectConfig loads .stubforge.yaml from the given directory, falling
// back to defaults when no config file exists.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ".stubforge.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = filepath.Join(dir, ".stubforge.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveProjectConfig writes the config to .stubforge.yaml.
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ".stubforge.yaml"), data, 0644)
}

// Merge applies non-empty overrides from another config (e.g., CLI flags).
func (c *ProjectConfig) Merge(other *ProjectConfig) {
	if other == nil {
		return
	}
	if other.Framework != "" {
		c.Framework = other.Framework
	}
	if other.Language != "" {
		c.Language = other.Language
	}
	if other.TestType != "" {
		c.TestType = other.TestType
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if len(other.Include) > 0 {
		c.Include = other.Include
	}
	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}
}

// FindSpecFiles walks root and returns spec files matching the include
// patterns and none of the exclude patterns, sorted for stable batch order.
func (c *ProjectConfig) FindSpecFiles(root string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		included := false
		for _, pattern := range c.Include {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				included = true
				break
			}
		}
		if !included {
			return nil
		}
		for _, pattern := range c.Exclude {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return nil
			}
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
