package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Extra holds fields of a settings object that are not modelled here. They
// are written back after the modelled fields so a save never drops them.
type Extra map[string]json.RawMessage

// splitFields decodes data into v and returns the fields v does not declare.
func splitFields(data []byte, v any) (Extra, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err //nolint:wrapcheck // decoding errors are wrapped by the loader
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err //nolint:wrapcheck // decoding errors are wrapped by the loader
	}

	for name := range jsonFieldNames(reflect.TypeOf(v).Elem()) {
		delete(all, name)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return Extra(all), nil
}

// joinFields encodes v and appends extra in key order.
func joinFields(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err //nolint:wrapcheck // encoding errors are wrapped by the saver
	}
	if len(extra) == 0 {
		return data, nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) < 2 || trimmed[len(trimmed)-1] != '}' {
		return nil, fmt.Errorf("cannot append fields to %s", trimmed)
	}

	var buf bytes.Buffer
	buf.Write(trimmed[:len(trimmed)-1])
	needComma := len(bytes.TrimSpace(trimmed[1:len(trimmed)-1])) > 0

	for _, key := range slices.Sorted(maps.Keys(extra)) {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err //nolint:wrapcheck // strings always encode
		}
		if needComma {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(extra[key])
		needComma = true
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// jsonFieldNames returns the JSON names of the exported fields of t.
func jsonFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for _, field := range reflect.VisibleFields(t) {
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// pluginFields has the declared fields of PluginSettings without its methods.
type pluginFields PluginSettings

// UnmarshalJSON decodes a plugin and keeps its unmodelled fields in Extra.
func (p *PluginSettings) UnmarshalJSON(data []byte) error {
	var decoded pluginFields
	extra, err := splitFields(data, &decoded)
	if err != nil {
		return err
	}

	*p = PluginSettings(decoded)
	p.Extra = extra
	return nil
}

// MarshalJSON encodes a plugin followed by its unmodelled fields.
func (p PluginSettings) MarshalJSON() ([]byte, error) {
	return joinFields(pluginFields(p), p.Extra)
}

type optionFields AdditionalOption

// UnmarshalJSON decodes an option and keeps its unmodelled fields in Extra.
func (o *AdditionalOption) UnmarshalJSON(data []byte) error {
	var decoded optionFields
	extra, err := splitFields(data, &decoded)
	if err != nil {
		return err
	}

	*o = AdditionalOption(decoded)
	o.Extra = extra
	return nil
}

// MarshalJSON encodes an option followed by its unmodelled fields.
func (o AdditionalOption) MarshalJSON() ([]byte, error) {
	return joinFields(optionFields(o), o.Extra)
}

type launcherFields LauncherSettings

// UnmarshalJSON decodes the settings file and keeps unmodelled top-level fields.
func (s *LauncherSettings) UnmarshalJSON(data []byte) error {
	var decoded launcherFields
	extra, err := splitFields(data, &decoded)
	if err != nil {
		return err
	}

	*s = LauncherSettings(decoded)
	s.Extra = extra
	return nil
}

// MarshalJSON encodes the settings file followed by its unmodelled fields.
func (s LauncherSettings) MarshalJSON() ([]byte, error) {
	return joinFields(launcherFields(s), s.Extra)
}
