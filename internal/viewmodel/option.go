package viewmodel

import (
	"github.com/wizzomafizzo/launchersettings/internal/notify"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
)

// AdditionalOption wraps one additional option record.
type AdditionalOption struct {
	option   *settings.AdditionalOption
	notifier *notify.Notifier
}

// NewAdditionalOption creates a view model for option. option must not be nil.
func NewAdditionalOption(option *settings.AdditionalOption) (*AdditionalOption, error) {
	if option == nil {
		return nil, &ConstructionError{Param: "option", Message: "AdditionalOption object is nil"}
	}

	vm := &AdditionalOption{option: option}
	vm.notifier = notify.New(vm)
	return vm, nil
}

// Subscribe registers a listener for changes to any property.
func (o *AdditionalOption) Subscribe(listener notify.Listener) *notify.Subscription {
	return o.notifier.Subscribe(listener)
}

// Key returns the option key.
func (o *AdditionalOption) Key() string                     { return o.option.Key }
func (o *AdditionalOption) DisplayLabel() string            { return o.option.DisplayLabel }
func (o *AdditionalOption) DisplayDescription() string      { return o.option.DisplayDescription }
func (o *AdditionalOption) OptionType() settings.OptionType { return o.option.PluginOptionType }

// ShowDescription reports whether a description line should be displayed.
func (o *AdditionalOption) ShowDescription() bool {
	return o.option.DisplayDescription != ""
}

func (o *AdditionalOption) Value() bool { return o.option.Value }

func (o *AdditionalOption) SetValue(value bool) {
	if o.option.Value != value {
		o.option.Value = value
		o.notifier.Emit(PropValue)
	}
}

func (o *AdditionalOption) TextValue() string { return o.option.TextValue }

func (o *AdditionalOption) SetTextValue(value string) {
	if o.option.TextValue != value {
		o.option.TextValue = value
		o.notifier.Emit(PropTextValue)
	}
}

func (o *AdditionalOption) NumberValue() float64 { return o.option.NumberValue }

func (o *AdditionalOption) SetNumberValue(value float64) {
	if o.option.NumberValue != value {
		o.option.NumberValue = value
		o.notifier.Emit(PropNumberValue)
	}
}
