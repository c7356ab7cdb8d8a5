package editor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

const (
	notAccessibleText     = "Not accessible: enable global results or set an action keyword"
	notAllowedKeywordText = "Action keyword is reserved and cannot be used"
)

var (
	enabledStyle  = color.New(color.FgGreen, color.Bold)
	disabledStyle = color.New(color.Faint)
	warningStyle  = color.New(color.FgYellow)
	labelStyle    = color.New(color.FgCyan)
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Render writes one plugin row. Disabled rows are dimmed, matching the
// DisabledOpacity hint. verbose adds identity, icon and options.
func Render(w io.Writer, row *viewmodel.Plugin, verbose bool) {
	title := enabledStyle
	marker := "●"
	if row.DisabledOpacity() < 1 {
		title = disabledStyle
		marker = "○"
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", marker, title.Sprint(row.String()))
	_, _ = fmt.Fprintf(w, "    %s %q  %s %s  %s %s  %s %d\n",
		labelStyle.Sprint("keyword:"), row.ActionKeyword(),
		labelStyle.Sprint("enabled:"), yesNo(row.Enabled()),
		labelStyle.Sprint("global:"), yesNo(row.IsGlobal()),
		labelStyle.Sprint("weight:"), row.WeightBoost(),
	)

	if row.ShowNotAccessibleWarning() {
		_, _ = fmt.Fprintf(w, "    %s\n", warningStyle.Sprint("! "+notAccessibleText))
	}
	if row.ShowNotAllowedKeywordWarning() {
		_, _ = fmt.Fprintf(w, "    %s\n", warningStyle.Sprint("! "+notAllowedKeywordText))
	}

	if !verbose {
		return
	}

	_, _ = fmt.Fprintf(w, "    %s %s\n", labelStyle.Sprint("id:"), row.ID())
	_, _ = fmt.Fprintf(w, "    %s %s\n", labelStyle.Sprint("author:"), row.Author())
	_, _ = fmt.Fprintf(w, "    %s %s\n", labelStyle.Sprint("icon:"), row.IconPath())

	if !row.ShowAdditionalOptions() {
		return
	}
	_, _ = fmt.Fprintf(w, "    %s\n", labelStyle.Sprint("options:"))
	for _, option := range row.AdditionalOptions() {
		_, _ = fmt.Fprintf(w, "      %s %s (%s)\n", optionValue(option), option.DisplayLabel(), option.Key())
		if option.ShowDescription() {
			_, _ = fmt.Fprintf(w, "          %s\n", option.DisplayDescription())
		}
	}
}

func optionValue(option *viewmodel.AdditionalOption) string {
	switch option.OptionType() {
	case settings.OptionTextbox:
		return fmt.Sprintf("[%q]", option.TextValue())
	case settings.OptionNumberbox:
		return fmt.Sprintf("[%g]", option.NumberValue())
	default:
		if option.Value() {
			return "[x]"
		}
		return "[ ]"
	}
}

// RenderAll writes every row separated by blank lines.
func RenderAll(w io.Writer, rows []*viewmodel.Plugin, verbose bool) {
	for i, row := range rows {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		Render(w, row, verbose)
	}
}
