// Package mapstyle provides the custom map style rules sent to the map widget.
package mapstyle

import (
	_ "embed"
	"encoding/json"
)

//go:embed dark.json
var darkJSON []byte

type Styler struct {
	Color string `json:"color,omitempty"`
}

type Rule struct {
	FeatureType string   `json:"featureType,omitempty"`
	ElementType string   `json:"elementType,omitempty"`
	Stylers     []Styler `json:"stylers"`
}

var dark = mustParse(darkJSON)

func mustParse(b []byte) []Rule {
	var rules []Rule
	if err := json.Unmarshal(b, &rules); err != nil {
		panic("mapstyle: invalid embedded style: " + err.Error())
	}
	return rules
}

// For returns the style rules for the theme; the light theme has none.
func For(darkMode bool) []Rule {
	if !darkMode {
		return []Rule{}
	}
	out := make([]Rule, len(dark))
	copy(out, dark)
	return out
}
