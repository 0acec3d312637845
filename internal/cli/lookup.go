package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/breedview/internal/config"
	"github.com/yildizm/breedview/internal/formatter"
	"github.com/yildizm/breedview/internal/logger"
	"github.com/yildizm/breedview/internal/search"
)

// errLookupFailed signals a failed lookup after its message was printed
var errLookupFailed = errors.New("lookup failed")

func newLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <breed>",
		Short: "Print photo links for a breed",
		Long: `Look a breed up once and print up to five photo links.

Sub-breeds are written as breed/sub. The exit status is non-zero when the
breed is unknown or the service cannot be reached.

Examples:
  breedview lookup bulldog
  breedview lookup hound/afghan -o json
  breedview lookup pug -o markdown > pug.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLookup,
	}

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg, "lookup")
	client, err := newBreedClient(cfg, log)
	if err != nil {
		return err
	}

	f, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Lookup.Timeout)
	defer cancel()

	display := search.Resolve(ctx, client, query, cfg.Lookup.MaxImages)
	log.InfoWithFields("lookup resolved", []logger.Field{
		logger.F("query", query),
		logger.F("kind", display.Kind().String()),
		logger.Count(len(display.Locators())),
	})

	out, err := f.Format(formatter.NewResult(query, display))
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if display.Kind() == search.KindFailed {
		return fmt.Errorf("%w: %s", errLookupFailed, display.Message())
	}
	return nil
}

// newFormatter honors --no-emoji for text output
func newFormatter(cmd *cobra.Command, cfg *config.Config) (formatter.Formatter, error) {
	format := resolveOutputFormat(cmd, cfg)
	if format == "" || format == "text" {
		return formatter.NewTerminalWithOptions(colorEnabled(cfg), !cfg.UI.NoEmoji), nil
	}
	return formatter.New(format, colorEnabled(cfg))
}
