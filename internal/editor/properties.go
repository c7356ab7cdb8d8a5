package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

// propertyAliases maps normalized user input to view model property names.
var propertyAliases = map[string]string{
	"disabled":      viewmodel.PropDisabled,
	"enabled":       viewmodel.PropEnabled,
	"isglobal":      viewmodel.PropIsGlobal,
	"global":        viewmodel.PropIsGlobal,
	"weightboost":   viewmodel.PropWeightBoost,
	"weight":        viewmodel.PropWeightBoost,
	"actionkeyword": viewmodel.PropActionKeyword,
	"keyword":       viewmodel.PropActionKeyword,
	"id":            viewmodel.PropID,
	"name":          viewmodel.PropName,
	"description":   viewmodel.PropDescription,
	"author":        viewmodel.PropAuthor,
	"iconpath":      viewmodel.PropIconPath,
}

// EditableProperties lists the writable properties accepted by Set.
func EditableProperties() []string {
	return []string{
		viewmodel.PropEnabled,
		viewmodel.PropIsGlobal,
		viewmodel.PropActionKeyword,
		viewmodel.PropWeightBoost,
	}
}

// ResolveProperty maps user input such as "action-keyword" to a property name.
func ResolveProperty(name string) (string, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if property, ok := propertyAliases[key]; ok {
		return property, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownProperty, name)
}

// setter parses value for property and returns the write to perform on row.
func setter(row *viewmodel.Plugin, property, value string) (func(), error) {
	name, err := ResolveProperty(property)
	if err != nil {
		return nil, err
	}

	switch name {
	case viewmodel.PropDisabled, viewmodel.PropEnabled, viewmodel.PropIsGlobal:
		b, err := parseBool(value)
		if err != nil {
			return nil, err
		}
		switch name {
		case viewmodel.PropDisabled:
			return func() { row.SetDisabled(b) }, nil
		case viewmodel.PropEnabled:
			return func() { row.SetEnabled(b) }, nil
		default:
			return func() { row.SetIsGlobal(b) }, nil
		}
	case viewmodel.PropWeightBoost:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalidValue, value)
		}
		return func() { row.SetWeightBoost(n) }, nil
	case viewmodel.PropActionKeyword:
		// Keywords are stored verbatim; whitespace is significant to the warnings.
		return func() { row.SetActionKeyword(value) }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrReadOnlyProperty, name)
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, value)
	}
	return b, nil
}
