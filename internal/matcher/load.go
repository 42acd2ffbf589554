package matcher

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_knowledge.yaml
var defaultKnowledge []byte

// file is the on-disk layout of a knowledge base.
type file struct {
	Entries []Entry `yaml:"entries"`
}

// Parse builds a knowledge base from YAML.
func Parse(data []byte) (*KnowledgeBase, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	return NewKnowledgeBase(f.Entries)
}

// Default returns the compiled-in knowledge base.
func Default() *KnowledgeBase {
	kb, err := Parse(defaultKnowledge)
	if err != nil {
		panic("matcher: invalid default knowledge base: " + err.Error())
	}
	return kb
}

// Load reads a knowledge base from path. An empty path returns Default().
func Load(path string) (*KnowledgeBase, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	return Parse(data)
}
