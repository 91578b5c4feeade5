package cmd

import (
	"fmt"
	"strconv"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit snap points and theme",
	Long: `Opens a form to edit the snap points, the default snap point and the theme,
then saves them to the config file.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configValues holds the form fields as typed.
type configValues struct {
	SnapPoints   string
	DefaultIndex string
	Theme        string
	Confirm      bool
}

func valuesFromConfig(cfg *config.Config) configValues {
	return configValues{
		SnapPoints:   config.FormatSnapPoints(cfg.GetSnapPoints()),
		DefaultIndex: strconv.Itoa(cfg.DefaultIndex),
		Theme:        cfg.GetTheme(),
		Confirm:      true,
	}
}

// apply validates the form values and writes them into cfg.
func (v configValues) apply(cfg *config.Config) error {
	fractions, err := config.ParseSnapPoints(v.SnapPoints)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(v.DefaultIndex)
	if err != nil {
		return fmt.Errorf("default snap point %q is not a number", v.DefaultIndex)
	}

	cfg.SetSnapPoints(fractions, idx)
	cfg.SetTheme(v.Theme)
	return cfg.Validate()
}

func validateSnapPoints(s string) error {
	_, err := config.ParseSnapPoints(s)
	return err
}

func validateIndex(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func newConfigForm(v *configValues) *huh.Form {
	themes := make([]string, 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themes = append(themes, string(name))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("snap_points").
			Title("Snap points").
			Description("Fractions of the usable height, e.g. 0.25, 0.5, 0.9").
			Validate(validateSnapPoints).
			Value(&v.SnapPoints),

		huh.NewInput().
			Key("default_index").
			Title("Default snap point").
			Description("Index into the snap points as typed, starting at 0").
			Validate(validateIndex).
			Value(&v.DefaultIndex),

		huh.NewSelect[string]().
			Key("theme").
			Title("Theme").
			Options(huh.NewOptions(themes...)...).
			Value(&v.Theme),

		huh.NewConfirm().
			Key("confirm").
			Title("Save?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(formTheme())
}

// formTheme styles the form with the active roamly theme.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		theme := ui.CurrentTheme()

		accent := lipgloss.Color(theme.Primary)
		subtle := lipgloss.Color(theme.TextMuted)
		errorColor := lipgloss.Color(theme.Error)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)
		return t
	})
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.SetThemeByName(cfg.GetTheme())

	values := valuesFromConfig(cfg)
	if err := newConfigForm(&values).Run(); err != nil {
		return err
	}
	if !values.Confirm {
		fmt.Fprintln(cmd.OutOrStdout(), "Not saved.")
		return nil
	}

	if err := values.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", cfg.Path())
	return nil
}
