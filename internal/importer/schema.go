package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BacklogSchema is the top-level YAML structure for a backlog import. The
// nesting mirrors the item hierarchy: epics contain features, features
// contain stories, stories contain leaf items.
type BacklogSchema struct {
	Project ProjectImport `yaml:"project"`
	Epics   []EpicImport  `yaml:"epics"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type EpicImport struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description,omitempty"`
	Features    []FeatureImport `yaml:"features,omitempty"`
}

type FeatureImport struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Stories     []StoryImport `yaml:"stories,omitempty"`
}

type StoryImport struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description,omitempty"`
	Items       []LeafItemImport `yaml:"items,omitempty"`
}

// LeafItemImport defines a task or bug in the import file. Only leaf items
// carry authored estimates; everything above them is derived.
type LeafItemImport struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Type        string   `yaml:"type,omitempty"` // task (default) or bug
	Status      string   `yaml:"status,omitempty"`
	Assignee    string   `yaml:"assignee,omitempty"`
	Estimate    *float64 `yaml:"estimate,omitempty"`
	ActualHours *float64 `yaml:"actual_hours,omitempty"`
}

// LoadBacklogSchema reads and parses a backlog import file.
func LoadBacklogSchema(path string) (*BacklogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema BacklogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
