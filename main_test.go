package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliData = `{
  "salesReps": [
    {"name": "A", "region": "North", "deals": [{"value": 1500, "status": "Closed Won"}]},
    {"name": "B", "region": "South", "deals": [{"value": 2500, "status": "Closed Won"}, {"value": 10, "status": "Closed Lost"}]}
  ]
}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(cliData), 0644))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"salesctl", args[0], "--data", path}, args[1:]...))
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "summary")
	require.NoError(t, err)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, float64(2), summary["totalReps"])
	assert.Equal(t, float64(4010), summary["totalValue"])
	assert.Equal(t, map[string]interface{}{"name": "B", "wonValue": float64(2500)}, summary["topPerformer"])
}

func TestPromptCommand(t *testing.T) {
	out, err := runCLI(t, "prompt", "--question", "Who leads?")
	require.NoError(t, err)

	assert.Contains(t, out, "- Total Deal Value: $4,010")
	assert.Contains(t, out, "- Top Performer: B ($2,500 in closed deals)")
	assert.Contains(t, out, "question: Who leads?")
}

func TestPromptCommand_RequiresQuestion(t *testing.T) {
	_, err := runCLI(t, "prompt")
	assert.Error(t, err)
}
