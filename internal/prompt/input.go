// Package prompt provides interactive line input for the settings editor.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// SetChoices enables Tab completion over the given words.
func (p *LinerPrompter) SetChoices(choices []string) {
	p.SetCompleter(func(line string) []string {
		var matches []string
		for _, choice := range choices {
			if strings.HasPrefix(choice, line) {
				matches = append(matches, choice)
			}
		}
		return matches
	})
}

// prompt wraps a Prompter call, mapping abort and EOF to ErrCancelled.
func prompt(prompter Prompter, text string) (string, error) {
	result, err := prompter.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}

// TextInputWithPrompter provides simple text input using a custom prompter.
// An empty answer returns current.
func TextInputWithPrompter(prompter Prompter, label, current string) (string, error) {
	coloredPrompt := color.CyanString("%s [%s]: ", label, current)
	result, err := prompt(prompter, coloredPrompt)
	if err != nil {
		return "", err
	}
	if result == "" {
		return current, nil
	}
	return result, nil
}

// ConfirmWithPrompter asks a yes/no question. An empty answer returns current.
func ConfirmWithPrompter(prompter Prompter, label string, current bool) (bool, error) {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}

	for {
		result, err := prompt(prompter, color.CyanString("%s [%s]: ", label, hint))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(result)) {
		case "":
			return current, nil
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		default:
			color.Yellow("Please answer y or n")
		}
	}
}

// IntInputWithPrompter asks for an integer. An empty answer returns current.
func IntInputWithPrompter(prompter Prompter, label string, current int) (int, error) {
	for {
		result, err := TextInputWithPrompter(prompter, label, strconv.Itoa(current))
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(result))
		if err == nil {
			return value, nil
		}
		color.Yellow("Please enter a whole number")
	}
}

// QuickSelectWithPrompter shows a key menu and returns the value of the chosen key.
// An unknown key returns "".
func QuickSelectWithPrompter(prompter Prompter, label string, keys []string, options map[string]string) (string, error) {
	for _, key := range keys {
		_, _ = fmt.Fprintf(color.Output, "  %s %s\n", color.GreenString("[%s]", key), options[key])
	}

	result, err := prompt(prompter, color.CyanString("%s: ", label))
	if err != nil {
		return "", err
	}

	return options[strings.TrimSpace(result)], nil
}
