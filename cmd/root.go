package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/roamly/roamly/internal/app"
	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "roamly",
	Short: "Trip map with a draggable bottom sheet",
	Long: `Roamly shows a trip map with a bottom sheet you can drag between snap points.
Drag the handle with the mouse, or use j/k to step between snap points.
Press / to open the search bar; the sheet makes room for it.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/roamly/config.yaml or ~/.roamly/config.yaml)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("roamly %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("roamly %s\n", version)
}

// loadConfig loads the config named by --config. A config that parses but
// fails validation is still returned; the app falls back to defaults and
// says so.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if cfg != nil && errors.Is(err, errors.KindConfig) {
			logger.Warn("Config %s rejected: %v", cfg.Path(), err)
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
