package scenario

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

var (
	// ErrReadFile indicates the scenario file could not be read.
	ErrReadFile = errors.New("read scenario file")
	// ErrInvalidScenario indicates a scenario definition is malformed.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Scenario is one named benchmark configuration.
type Scenario struct {
	SystemProperties map[string]string `json:"system-properties,omitempty" yaml:"system-properties,omitempty"`
	Name             string            `json:"-"                           yaml:"-"`
	Title            string            `json:"title,omitempty"             yaml:"title,omitempty"`
	Tasks            []string          `json:"tasks"                       yaml:"tasks"`
	GradleArgs       []string          `json:"gradle-args,omitempty"       yaml:"gradle-args,omitempty"`
	JVMArgs          []string          `json:"jvm-args,omitempty"          yaml:"jvm-args,omitempty"`
	WarmUps          int               `json:"warm-ups,omitempty"          yaml:"warm-ups,omitempty"`
	Iterations       int               `json:"iterations,omitempty"        yaml:"iterations,omitempty"`
}

// DisplayName returns the title, falling back to the name.
func (s Scenario) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}

	return s.Name
}

// File is the on-disk shape of a scenario file.
type File map[string]Scenario

// Load reads and parses the scenario file at path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Scenario path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scenarios, nil
}

// Parse decodes scenario definitions from YAML. Unknown keys are rejected.
// The result is sorted by scenario name.
func Parse(data []byte) ([]Scenario, error) {
	var f File

	err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	scenarios := make([]Scenario, 0, len(f))

	for _, name := range slices.Sorted(maps.Keys(f)) {
		s := f[name]
		s.Name = name

		err := s.Validate()
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// Validate reports whether s can be benchmarked.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}

	if len(s.Tasks) == 0 {
		return fmt.Errorf("%w: %s: no tasks", ErrInvalidScenario, s.Name)
	}

	if s.WarmUps < 0 || s.Iterations < 0 {
		return fmt.Errorf("%w: %s: negative build count", ErrInvalidScenario, s.Name)
	}

	return nil
}

// Schema returns a JSON Schema describing the scenario file format.
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("infer scenario schema: %w", err)
	}

	schema.Title = "buildbench scenarios"

	return schema, nil
}
