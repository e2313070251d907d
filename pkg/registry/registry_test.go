// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"activities": [
			{"id": "profile.submission.validate", "taskType": "validate-profile", "implementationStatus": "implemented"},
			{"id": "insight.blindspots.identify", "taskType": "identify-blindspots", "implementationStatus": "implemented"},
			{"id": "communication.digest.send", "taskType": "send-digest", "implementationStatus": "planned"}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", reg.Version)
	assert.Len(t, reg.Activities, 3)
	assert.Len(t, reg.Implemented(), 2)

	activity, ok := reg.ByTaskType("identify-blindspots")
	require.True(t, ok)
	assert.Equal(t, "insight.blindspots.identify", activity.ID)

	_, ok = reg.ByTaskType("unknown-task")
	assert.False(t, ok)
}

func TestLoadRegistry_BadNaming(t *testing.T) {
	path := writeRegistry(t, `{
		"activities": [{"id": "ValidateProfile", "taskType": "validate-profile"}]
	}`)

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must follow format")
}

func TestLoadRegistry_DuplicateTaskType(t *testing.T) {
	path := writeRegistry(t, `{
		"activities": [
			{"id": "profile.submission.validate", "taskType": "validate-profile"},
			{"id": "profile.submission.revalidate", "taskType": "validate-profile"}
		]
	}`)

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task type")
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
