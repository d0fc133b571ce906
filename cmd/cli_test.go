package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsRequiresCoachFlag(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	_, _, err := executeCLI(t, home, "clients")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"coach\" not set")
}

func TestClientsHappyPath(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	stdout, _, err := executeCLI(t, home, "clients", "--coach", "coach-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "clients: 2")
	assert.Contains(t, stdout, "Alex Doe (client-1)")
	assert.Contains(t, stdout, "Awaiting acceptance")
	assert.Contains(t, stdout, "Missing program")
}

func TestClientsJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	stdout, _, err := executeCLI(t, home, "clients", "--coach", "coach-1", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Status\": \"no_status\"")
	assert.Contains(t, stdout, "\"Status\": \"missing_program\"")
}

func TestClientsUnknownCoach(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	_, _, err := executeCLI(t, home, "clients", "--coach", "coach-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coach not found")
}

func TestTasksRankedOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	stdout, _, err := executeCLI(t, home, "tasks", "--coach", "coach-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tasks: 2")

	// The join request outranks the missing program.
	requestIdx := bytes.Index([]byte(stdout), []byte("[New Request]"))
	programIdx := bytes.Index([]byte(stdout), []byte("[Missing Program]"))
	require.GreaterOrEqual(t, requestIdx, 0)
	require.GreaterOrEqual(t, programIdx, 0)
	assert.Less(t, requestIdx, programIdx)
}

func TestTasksJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeRecordsFixture(home))

	stdout, _, err := executeCLI(t, home, "tasks", "--coach", "coach-1", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Tag\": \"New Request\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeRecordsFixture seeds a roster whose derived statuses do not depend
// on the wall clock: a pending join request and an accepted offer with no
// program assigned.
func writeRecordsFixture(home string) error {
	configDir := filepath.Join(home, ".coachdesk")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	records := `version = 1

[[coaches]]
id = "coach-1"
name = "Sam Trainer"

[[clients]]
id = "client-1"
coach_id = "coach-1"
full_name = "Alex Doe"
email = "alex@example.com"
plan_tier = "premium"

[[clients]]
id = "client-2"
coach_id = "coach-1"
full_name = "Billie Roe"
email = "billie@example.com"

[[requests]]
customer_id = "client-1"
coach_id = "coach-1"
status = "pending"

[[offers]]
customer_id = "client-2"
coach_id = "coach-1"
status = "accepted"
`

	return os.WriteFile(filepath.Join(configDir, "records.toml"), []byte(records), 0o600)
}
