package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/breedview/internal/breed"
)

var breedsFilter string

func newBreedsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "List the breeds the service knows",
		Long: `List every breed name the image service accepts, one per line.
Sub-breeds are listed as breed/sub.

Examples:
  breedview breeds
  breedview breeds --filter terrier
  breedview breeds -o json`,
		Args: cobra.NoArgs,
		RunE: runBreeds,
	}

	cmd.Flags().StringVarP(&breedsFilter, "filter", "f", "", "only list breeds containing this text")

	return cmd
}

func runBreeds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newBreedClient(cfg, newLogger(cfg, "breeds"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Lookup.Timeout)
	defer cancel()

	breeds, err := client.Breeds(ctx)
	if breed.IsNetworkError(err) {
		return fmt.Errorf("cannot reach the image service at %s: %w", cfg.Lookup.BaseURL, err)
	}
	if err != nil {
		return fmt.Errorf("failed to list breeds: %w", err)
	}

	if breedsFilter != "" {
		needle := strings.ToLower(breedsFilter)
		filtered := breeds[:0]
		for _, b := range breeds {
			if strings.Contains(b, needle) {
				filtered = append(filtered, b)
			}
		}
		breeds = filtered
	}

	out := cmd.OutOrStdout()
	switch format := resolveOutputFormat(cmd, cfg); format {
	case "json":
		data, err := json.MarshalIndent(breeds, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal breeds: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "text", "markdown", "csv":
		for _, b := range breeds {
			if format == "markdown" {
				fmt.Fprintf(out, "- %s\n", b)
				continue
			}
			fmt.Fprintln(out, b)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	return nil
}
