package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/vocabulary/owltime"
)

const pizzaSnapshot = `iri: http://example.org/pizza
prefixes:
  ex: http://example.org/pizza#
declarations:
  Class: [ex:Pizza]
  NamedIndividual: [ex:margherita]
axioms:
  - ClassAssertion: [ex:Pizza, ex:margherita]
`

const brokenSnapshot = `iri: http://example.org/broken
prefixes:
  ex: http://example.org/broken#
declarations:
  NamedIndividual: [ex:ghost]
axioms:
  - ClassAssertion: [owl:Nothing, ex:ghost]
`

const missionSnapshot = `iri: http://example.org/missions
prefixes:
  ex: http://example.org/missions#
axioms:
  - DataPropertyAssertion: [time:inXSDDateTimeStamp, ex:launch, {value: "2023-03-22T10:35:34Z", datatype: xsd:dateTimeStamp}]
  - ObjectPropertyAssertion: [time:hasBeginning, ex:mission, ex:launch]
  - DataPropertyAssertion: [time:hasXSDDuration, ex:mission, {value: P3D, datatype: xsd:duration}]
  - ObjectPropertyAssertion: [time:hasTime, ex:apollo, ex:mission]
`

// sandbox isolates the test from user and project configuration and
// returns the directory snapshots are written to.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeSnapshot(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "semowl version "+Version)
}

func TestRulesCommand(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "AsymmetricProperty")
	assert.Contains(t, out, "ObjectPropertyChain")
}

func TestValidateCommand(t *testing.T) {
	dir := sandbox(t)
	pizza := writeSnapshot(t, dir, "pizza.yaml", pizzaSnapshot)
	broken := writeSnapshot(t, dir, "broken.yaml", brokenSnapshot)

	t.Run("clean snapshot passes", func(t *testing.T) {
		out, err := execute(t, "validate", pizza)
		require.NoError(t, err)
		assert.Contains(t, out, "0 errors")
	})

	t.Run("errors fail the run", func(t *testing.T) {
		out, err := execute(t, "validate", broken)
		assert.ErrorIs(t, err, errThreshold)
		assert.Contains(t, out, "ThingNothing")
	})

	t.Run("fail-on none", func(t *testing.T) {
		_, err := execute(t, "validate", "--fail-on", "none", broken)
		assert.NoError(t, err)
	})

	t.Run("rule selection", func(t *testing.T) {
		out, err := execute(t, "validate", "--rules", "DisjointClasses", broken)
		require.NoError(t, err)
		assert.NotContains(t, out, "ThingNothing")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := execute(t, "validate", "--format", "json", "--fail-on", "none", broken)
		require.NoError(t, err)

		var got fileReport
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, broken, got.File)
		assert.Equal(t, "http://example.org/broken", got.Report.Ontology)
		assert.NotEmpty(t, got.Report.ByRule("ThingNothing"))
	})

	t.Run("turtle output", func(t *testing.T) {
		out, err := execute(t, "validate", "--format", "turtle", "--profile", "cco", "--fail-on", "none", broken)
		require.NoError(t, err)
		assert.Contains(t, out, "@prefix")
		assert.Contains(t, out, "<http://example.org/broken>")
	})

	t.Run("directory input", func(t *testing.T) {
		out, err := execute(t, "validate", "--fail-on", "none", dir)
		require.NoError(t, err)
		assert.Contains(t, out, pizza)
		assert.Contains(t, out, broken)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, "validate", "--format", "rdfxml", pizza)
		assert.Error(t, err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := execute(t, "validate", "--rules", "NoSuchRule", pizza)
		assert.Error(t, err)
	})

	t.Run("store needs nats", func(t *testing.T) {
		_, err := execute(t, "validate", "--store", pizza)
		assert.ErrorContains(t, err, "nats.store")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "validate", filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestValidateUsesConfigFile(t *testing.T) {
	dir := sandbox(t)
	broken := writeSnapshot(t, dir, "broken.yaml", brokenSnapshot)
	cfgPath := writeSnapshot(t, dir, "custom.yaml", "validator:\n  fail_on: none\noutput:\n  format: yaml\n")

	out, err := execute(t, "validate", "--config", cfgPath, broken)
	require.NoError(t, err)
	assert.Contains(t, out, "rule: ThingNothing")
}

func TestTimeCommands(t *testing.T) {
	dir := sandbox(t)
	missions := writeSnapshot(t, dir, "missions.yaml", missionSnapshot)
	ex := "http://example.org/missions#"

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "coordinate",
			args: []string{"time", "coordinate", missions, ex + "launch"},
			want: []string{"2023-03-22T10:35:34 (" + owltime.Gregorian + ")"},
		},
		{
			name: "beginning",
			args: []string{"time", "beginning", missions, ex + "mission"},
			want: []string{"2023-03-22T10:35:34"},
		},
		{
			name: "extent",
			args: []string{"time", "extent", missions, ex + "mission"},
			want: []string{"P3D"},
		},
		{
			name: "feature",
			args: []string{"time", "feature", missions, ex + "apollo"},
			want: []string{"interval " + ex + "mission", "beginning: 2023-03-22T10:35:34", "extent: P3D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("nothing encoded", func(t *testing.T) {
		_, err := execute(t, "time", "coordinate", missions, ex+"unknown")
		assert.ErrorIs(t, err, errNotEncoded)
	})

	t.Run("unregistered calendar", func(t *testing.T) {
		_, err := execute(t, "time", "coordinate", "--calendar", "http://example.org/cal", missions, ex+"launch")
		assert.Error(t, err)
	})
}
