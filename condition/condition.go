// Package condition holds the static per-condition knowledge base shown
// to users alongside classification results. The data is embedded as
// TOML and parsed once at init.
package condition

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed conditions.toml
var conditionsTOML []byte

// Profile describes one eye condition for reports and result pages.
// Summary is the one-line description returned with upload responses;
// Description is the long form used in reports.
type Profile struct {
	Summary         string   `toml:"summary" json:"summary"`
	Description     string   `toml:"description" json:"description"`
	Symptoms        []string `toml:"symptoms" json:"symptoms"`
	Recommendations []string `toml:"recommendations" json:"recommendations"`
	Diet            []string `toml:"diet" json:"diet"`
}

const defaultKey = "default"

var profiles map[string]Profile

func init() {
	if err := toml.Unmarshal(conditionsTOML, &profiles); err != nil {
		panic(fmt.Sprintf("condition: parsing embedded conditions.toml: %v", err))
	}
	if _, ok := profiles[defaultKey]; !ok {
		panic("condition: embedded conditions.toml has no default profile")
	}
}

// Get returns the profile for a label, falling back to the generic
// profile for labels outside the known set.
func Get(label string) Profile {
	if p, ok := profiles[label]; ok {
		return p
	}
	return profiles[defaultKey]
}

// Summary returns the one-line description for a label, with a generic
// fallback for unknown labels.
func Summary(label string) string {
	return Get(label).Summary
}
