package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/breedview/internal/config"
	"github.com/yildizm/breedview/internal/ui"
)

var (
	searchDelay time.Duration
	searchTheme string
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search breed photos interactively",
		Long: `Open the interactive search. Type a breed name; once you stop typing for
the debounce delay, up to five photo links for that breed are shown.

Keys:
  esc, ctrl+c   quit
  ctrl+u        clear the query
  ctrl+r        search now, without waiting for the delay

Examples:
  breedview search
  breedview search --delay 250ms --theme high-contrast`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}

	addSearchFlags(cmd)

	return cmd
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&searchDelay, "delay", 0, "debounce delay before a lookup starts (default from config, 500ms)")
	cmd.Flags().StringVar(&searchTheme, "theme", "", "color theme (default, high-contrast, minimal)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySearchFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	restoreLogs, err := redirectLogs(cfg)
	if err != nil {
		return err
	}
	defer restoreLogs()

	log := newLogger(cfg, "search")
	client, err := newBreedClient(cfg, log)
	if err != nil {
		return err
	}

	configPath := cfgFile
	if configPath == "" {
		configPath, _ = config.FindConfigFile()
	}

	log.Info("starting search, delay=%s theme=%s", cfg.Debounce.Delay, cfg.UI.Theme)

	return ui.Run(ui.Options{
		Lookup:       client,
		Limit:        cfg.Lookup.MaxImages,
		Delay:        cfg.Debounce.Delay,
		Timeout:      cfg.Lookup.Timeout,
		Placeholder:  cfg.UI.Placeholder,
		Theme:        cfg.UI.Theme,
		Color:        colorEnabled(cfg),
		ConfigPath:   configPath,
		CustomConfig: cfgFile,
		AutoReload:   cfg.UI.AutoReload,
		Logger:       log,
	})
}

// applySearchFlags lets explicit flags win over file and env settings
func applySearchFlags(cmd *cobra.Command, cfg *config.Config) {
	if flag := cmd.Flags().Lookup("delay"); flag != nil && flag.Changed {
		cfg.Debounce.Delay = searchDelay
	}
	if flag := cmd.Flags().Lookup("theme"); flag != nil && flag.Changed {
		cfg.UI.Theme = searchTheme
	}
}
