// internal/registry/seedfile.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// seedSchema is the JSON Schema a seed file must satisfy. The file holds the
// same shape the list endpoint serves: activity name mapped to its record.
const seedSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "object",
		"required": ["description", "schedule", "max_participants", "participants"],
		"additionalProperties": false,
		"properties": {
			"description":      {"type": "string"},
			"schedule":         {"type": "string"},
			"max_participants": {"type": "integer", "minimum": 1},
			"participants":     {"type": "array", "items": {"type": "string"}}
		}
	}
}`

// LoadSeedFile reads a JSON seed roster from path and validates it against
// the seed schema before use. Schema violations and duplicate participants
// within one activity are startup errors.
func LoadSeedFile(path string) (map[string]*Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(seedSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate seed file %s: %w", path, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("seed file %s: %s", path, formatSchemaErrors(result))
	}

	var seed map[string]*Activity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unmarshal seed file %s: %w", path, err)
	}

	for name, act := range seed {
		seen := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if seen[email] {
				return nil, fmt.Errorf("seed file %s: activity %q lists %s twice", path, name, email)
			}
			seen[email] = true
		}
	}

	return seed, nil
}

func formatSchemaErrors(result *gojsonschema.Result) string {
	msg := ""
	for i, resultErr := range result.Errors() {
		if i > 0 {
			msg += "; "
		}
		msg += resultErr.String()
	}
	return msg
}
