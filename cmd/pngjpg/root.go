package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/pngjpg/internal/check"
	"github.com/backmassage/pngjpg/internal/config"
	"github.com/backmassage/pngjpg/internal/display"
	"github.com/backmassage/pngjpg/internal/logging"
	"github.com/backmassage/pngjpg/internal/pipeline"
)

// errReported marks errors already written through the logger.
var errReported = errors.New("reported")

func newRootCommand() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "pngjpg [flags]",
		Short: "Convert a blog's PNG images to JPEG and update references",
		Long: `pngjpg converts every PNG under the images directory of a static site to
JPEG, flattening transparency onto a solid background, then rewrites
references in HTML, JS, CSS, Markdown, JSON and text files to point at the
new files. Use --dry-run first to see what would change.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return migrate(cmd, &cfg)
		},
	}
	flags = config.BindFlags(cmd.Flags())
	return cmd
}

// migrate runs the whole migration with output on the command's stdout.
func migrate(cmd *cobra.Command, cfg *config.Config) error {
	log := logging.NewLogger(cfg, cmd.OutOrStdout())
	display.PrintBanner(log.Writer())
	log.Info("=== pngjpg v%s ===", version)

	layout, err := check.ValidateLayout(cfg)
	if err != nil {
		log.Error("%v", err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	if _, err := pipeline.Run(cfg, layout, log); err != nil {
		log.Error("%v", err)
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}
