// Package objection holds canonical per-account objection themes. The
// library is a read-only derivation source for signal enrichment.
package objection

import (
	"fmt"
	"os"
	"strings"

	"sigdesk/internal/logger"
	"sigdesk/internal/types"

	"gopkg.in/yaml.v3"
)

// Library serves objection themes keyed by account.
type Library struct {
	objections []types.Objection
}

type seedFile struct {
	Objections []types.Objection `yaml:"objections"`
}

// New builds a library over a fixed objection set.
func New(objections []types.Objection) *Library {
	return &Library{objections: append([]types.Objection(nil), objections...)}
}

// LoadFile reads the YAML seed at path. A missing file yields an empty
// library rather than an error; enrichment falls back to generic gap
// statements when no objections exist.
func LoadFile(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("objection seed %s not found, starting with empty library", path)
			return New(nil), nil
		}
		return nil, fmt.Errorf("reading objection seed failed: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing objection seed %s failed: %w", path, err)
	}
	return New(seed.Objections), nil
}

// List returns the objections scoped to the given org and account, in seed
// order. Unknown accounts return an empty slice.
func (l *Library) List(orgID, accountID string) []types.Objection {
	if l == nil {
		return nil
	}
	var out []types.Objection
	for _, o := range l.objections {
		if orgID != "" && o.OrgID != "" && !strings.EqualFold(o.OrgID, orgID) {
			continue
		}
		if !strings.EqualFold(o.AccountID, accountID) {
			continue
		}
		out = append(out, o)
	}
	return out
}
