package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultClasses are the labels of the classifier outputs, by index.
var DefaultClasses = []string{
	"Ashwagandha", "Tulsi", "Turmeric", "Brahmi", "Neem", "Shatavari",
}

// YAMLConfig represents the structure of the config.yaml file.
// Lists that are awkward to keep in env vars live here.
type YAMLConfig struct {
	Classes []string     `yaml:"classes"` // Classifier output labels, by index
	Herbs   []HerbConfig `yaml:"herbs"`   // Herb catalog seed; empty uses the built-in catalog
}

// HerbConfig defines a herb catalog entry in the YAML config.
type HerbConfig struct {
	Name               string   `yaml:"name"`
	ScientificName     string   `yaml:"scientific_name"`
	Nature             string   `yaml:"nature"`
	DoshaCompatibility string   `yaml:"dosha_compatibility"`
	Description        string   `yaml:"description"`
	Benefits           []string `yaml:"benefits,omitempty"`
	Contraindications  []string `yaml:"contraindications,omitempty"`
	Dosage             string   `yaml:"dosage,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetClasses returns the configured classifier labels, or DefaultClasses.
func (c *YAMLConfig) GetClasses() []string {
	if c == nil || len(c.Classes) == 0 {
		return append([]string(nil), DefaultClasses...)
	}
	return append([]string(nil), c.Classes...)
}

// GetHerbs returns the configured herb catalog seed, or nil when none is set.
func (c *YAMLConfig) GetHerbs() []HerbConfig {
	if c == nil {
		return nil
	}
	return c.Herbs
}
