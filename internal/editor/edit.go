package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/launchersettings/internal/notify"
	"github.com/wizzomafizzo/launchersettings/internal/prompt"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

// Edit walks the user through every editable property of one plugin and
// returns the notifications raised. Values are written as they are answered;
// callers decide whether to Save.
func (a *App) Edit(prompter prompt.Prompter, id string) ([]string, error) {
	row, err := a.Find(id)
	if err != nil {
		return nil, err
	}

	var names []string
	sub := row.Subscribe(func(change notify.Change) {
		names = append(names, change.Property)
	})
	defer sub.Unsubscribe()

	if err := editRow(prompter, row); err != nil {
		return names, err
	}

	for _, option := range row.AdditionalOptions() {
		if err := editOption(prompter, option); err != nil {
			return names, err
		}
	}

	return names, nil
}

func editRow(prompter prompt.Prompter, row *viewmodel.Plugin) error {
	enabled, err := prompt.ConfirmWithPrompter(prompter, "Enabled", row.Enabled())
	if err != nil {
		return fmt.Errorf("enabled: %w", err)
	}
	row.SetEnabled(enabled)

	global, err := prompt.ConfirmWithPrompter(prompter, "Include in global results", row.IsGlobal())
	if err != nil {
		return fmt.Errorf("global: %w", err)
	}
	row.SetIsGlobal(global)

	keyword, err := prompt.TextInputWithPrompter(prompter, "Action keyword", row.ActionKeyword())
	if err != nil {
		return fmt.Errorf("action keyword: %w", err)
	}
	row.SetActionKeyword(keyword)

	weight, err := prompt.IntInputWithPrompter(prompter, "Weight boost", row.WeightBoost())
	if err != nil {
		return fmt.Errorf("weight boost: %w", err)
	}
	row.SetWeightBoost(weight)

	return nil
}

func editOption(prompter prompt.Prompter, option *viewmodel.AdditionalOption) error {
	label := option.DisplayLabel()

	switch option.OptionType() {
	case settings.OptionTextbox:
		value, err := prompt.TextInputWithPrompter(prompter, label, option.TextValue())
		if err != nil {
			return fmt.Errorf("%s: %w", option.Key(), err)
		}
		option.SetTextValue(value)
	case settings.OptionNumberbox:
		current := strconv.FormatFloat(option.NumberValue(), 'g', -1, 64)
		value, err := prompt.TextInputWithPrompter(prompter, label, current)
		if err != nil {
			return fmt.Errorf("%s: %w", option.Key(), err)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%s: %w: %q is not a number", option.Key(), ErrInvalidValue, value)
		}
		option.SetNumberValue(n)
	default:
		value, err := prompt.ConfirmWithPrompter(prompter, label, option.Value())
		if err != nil {
			return fmt.Errorf("%s: %w", option.Key(), err)
		}
		option.SetValue(value)
	}

	return nil
}
