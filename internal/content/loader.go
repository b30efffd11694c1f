package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sigdesk/internal/types"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// seedSchema is the contract the content seed file must satisfy. Kind
// payloads stay open so new fields ship without a loader change.
const seedSchema = `{
	"type": "object",
	"properties": {
		"stories": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title", "type"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1},
					"type": {"type": "string", "minLength": 1}
				}
			}
		},
		"voices": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "episodes"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"episodes": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["id", "title", "published_at"]
						}
					}
				}
			}
		},
		"winwires": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title", "created_at"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

var compiledSeedSchema = jsonschema.MustCompileString("content_seed.json", seedSchema)

type seedFile struct {
	Stories  []types.SignalStory `json:"stories"`
	Voices   []types.Voice       `json:"voices"`
	Winwires []types.Winwire     `json:"winwires"`
}

// loadSeed reads, validates and decodes the seed file at path.
func loadSeed(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading content seed failed: %w", err)
	}
	if err := validateSeed(raw); err != nil {
		return Snapshot{}, fmt.Errorf("content seed %s invalid: %w", path, err)
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return Snapshot{}, fmt.Errorf("decoding content seed %s failed: %w", path, err)
	}
	return Snapshot{
		Stories:  seed.Stories,
		Voices:   seed.Voices,
		Winwires: seed.Winwires,
		LoadedAt: time.Now(),
	}, nil
}

// validateSeed runs a cheap structural probe before full schema validation so
// the common failure modes produce direct messages.
func validateSeed(raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("file is empty")
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("not valid JSON")
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return fmt.Errorf("root must be a JSON object")
	}
	for _, key := range []string{"stories", "voices", "winwires"} {
		node := parsed.Get(key)
		if node.Exists() && !node.IsArray() {
			return fmt.Errorf("%q must be an array", key)
		}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if err := compiledSeedSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
