package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/buildbench/scenario"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    []scenario.Scenario
		wantErr error
	}{
		"single scenario": {
			input: `
assemble:
  title: Assemble all
  tasks: [assemble]
  gradle-args: [--parallel]
  jvm-args: [-Xmx2g]
  system-properties:
    org.gradle.caching: "true"
  warm-ups: 6
  iterations: 10
`,
			want: []scenario.Scenario{
				{
					Name:             "assemble",
					Title:            "Assemble all",
					Tasks:            []string{"assemble"},
					GradleArgs:       []string{"--parallel"},
					JVMArgs:          []string{"-Xmx2g"},
					SystemProperties: map[string]string{"org.gradle.caching": "true"},
					WarmUps:          6,
					Iterations:       10,
				},
			},
		},
		"sorted by name": {
			input: `
test:
  tasks: [test]
assemble:
  tasks: [assemble]
`,
			want: []scenario.Scenario{
				{Name: "assemble", Tasks: []string{"assemble"}},
				{Name: "test", Tasks: []string{"test"}},
			},
		},
		"empty file": {
			input: "",
			want:  []scenario.Scenario{},
		},
		"missing tasks": {
			input:   "assemble:\n  title: nothing to run\n",
			wantErr: scenario.ErrInvalidScenario,
		},
		"negative iterations": {
			input:   "assemble:\n  tasks: [assemble]\n  iterations: -1\n",
			wantErr: scenario.ErrInvalidScenario,
		},
		"unknown field": {
			input:   "assemble:\n  tasks: [assemble]\n  bogus: 1\n",
			wantErr: scenario.ErrInvalidScenario,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := scenario.Parse([]byte(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scenarios.yaml")
		err := os.WriteFile(path, []byte("build:\n  tasks: [build]\n"), 0o600)
		require.NoError(t, err)

		got, err := scenario.Load(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "build", got[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, scenario.ErrReadFile)
	})
}

func TestScenario_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Assemble", scenario.Scenario{Name: "assemble", Title: "Assemble"}.DisplayName())
	assert.Equal(t, "assemble", scenario.Scenario{Name: "assemble"}.DisplayName())
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema, err := scenario.Schema()
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	require.NotNil(t, schema.AdditionalProperties)
	assert.Contains(t, schema.AdditionalProperties.Properties, "tasks")
	assert.NotContains(t, schema.AdditionalProperties.Properties, "Name")
}
