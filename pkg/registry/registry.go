// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"saarthi-workers/internal/common/validation"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks activity IDs against the naming convention and rejects
// duplicate IDs or task types.
func (r *ActivityRegistry) Validate() error {
	seenIDs := make(map[string]bool, len(r.Activities))
	seenTaskTypes := make(map[string]bool, len(r.Activities))

	for _, activity := range r.Activities {
		if err := validation.ValidateActivityNaming(activity.ID); err != nil {
			return fmt.Errorf("activity %q: %w", activity.ID, err)
		}
		if seenIDs[activity.ID] {
			return fmt.Errorf("duplicate activity ID %q", activity.ID)
		}
		seenIDs[activity.ID] = true

		if activity.TaskType == "" {
			return fmt.Errorf("activity %q: task type is required", activity.ID)
		}
		if seenTaskTypes[activity.TaskType] {
			return fmt.Errorf("duplicate task type %q", activity.TaskType)
		}
		seenTaskTypes[activity.TaskType] = true
	}
	return nil
}

// ByTaskType returns the activity registered under the given task type.
func (r *ActivityRegistry) ByTaskType(taskType string) (Activity, bool) {
	for _, activity := range r.Activities {
		if activity.TaskType == taskType {
			return activity, true
		}
	}
	return Activity{}, false
}

// Implemented returns the activities with implementationStatus "implemented".
func (r *ActivityRegistry) Implemented() []Activity {
	var implemented []Activity
	for _, activity := range r.Activities {
		if activity.ImplementationStatus == "implemented" {
			implemented = append(implemented, activity)
		}
	}
	return implemented
}
