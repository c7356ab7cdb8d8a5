// Package settings provides the launcher settings file model and persistence.
package settings

import "encoding/json"

// OptionType identifies how an additional option is edited.
type OptionType int

const (
	// OptionCheckbox is a boolean toggle stored in Value.
	OptionCheckbox OptionType = iota
	// OptionTextbox is a free text value stored in TextValue.
	OptionTextbox
	// OptionNumberbox is a numeric value stored in NumberValue.
	OptionNumberbox
)

// String returns the option type name.
func (t OptionType) String() string {
	switch t {
	case OptionCheckbox:
		return "checkbox"
	case OptionTextbox:
		return "textbox"
	case OptionNumberbox:
		return "numberbox"
	default:
		return "unknown"
	}
}

// LauncherSettings is the launcher settings file. Only the plugin list is
// interpreted; Properties and any unmodelled field round-trip untouched.
//
//nolint:tagliatelle // launcher settings file format
type LauncherSettings struct {
	Properties json.RawMessage  `json:"properties,omitempty"`
	Name       string           `json:"name,omitempty"`
	Version    string           `json:"version,omitempty"`
	Plugins    []PluginSettings `json:"plugins"`
	Extra      Extra            `json:"-"`
}

// PluginSettings is the persisted configuration of one launcher plugin.
//
//nolint:tagliatelle // launcher uses PascalCase
type PluginSettings struct {
	ID                string             `json:"Id"`
	Name              string             `json:"Name"`
	Description       string             `json:"Description"`
	Author            string             `json:"Author"`
	ActionKeyword     string             `json:"ActionKeyword"`
	IconPathDark      string             `json:"IconPathDark"`
	IconPathLight     string             `json:"IconPathLight"`
	AdditionalOptions []AdditionalOption `json:"AdditionalOptions"`
	WeightBoost       int                `json:"WeightBoost"`
	Disabled          bool               `json:"Disabled"`
	IsGlobal          bool               `json:"IsGlobal"`
	Extra             Extra              `json:"-"`
}

// AdditionalOption is a secondary plugin setting shown under the plugin row.
//
//nolint:tagliatelle // launcher uses PascalCase
type AdditionalOption struct {
	Key                string     `json:"Key"`
	DisplayLabel       string     `json:"DisplayLabel"`
	DisplayDescription string     `json:"DisplayDescription,omitempty"`
	TextValue          string     `json:"TextValue,omitempty"`
	PluginOptionType   OptionType `json:"PluginOptionType"`
	NumberValue        float64    `json:"NumberValue,omitempty"`
	Value              bool       `json:"Value"`
	Extra              Extra      `json:"-"`
}

// FindPlugin returns the plugin record with the given id, or nil.
// The returned pointer aliases the slice element.
func (s *LauncherSettings) FindPlugin(id string) *PluginSettings {
	for i := range s.Plugins {
		if s.Plugins[i].ID == id {
			return &s.Plugins[i]
		}
	}
	return nil
}

// FindOption returns the additional option with the given key, or nil.
func (p *PluginSettings) FindOption(key string) *AdditionalOption {
	for i := range p.AdditionalOptions {
		if p.AdditionalOptions[i].Key == key {
			return &p.AdditionalOptions[i]
		}
	}
	return nil
}
