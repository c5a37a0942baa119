package cli

import (
	"context"

	"github.com/arthur-debert/volt/internal/commands"
	"github.com/arthur-debert/volt/pkg/site"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newBuildCmd(g *globalFlags) *cobra.Command {
	var (
		clean   bool
		noClean bool
		drafts  bool
		output  string
		format  string
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   commands.MsgBuildShort,
		Long:    commands.MsgBuildLong,
		Example: commands.MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, format)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("clean") {
				overrides["build.clean"] = clean
			}
			if cmd.Flags().Changed("no-clean") {
				overrides["build.clean"] = !noClean
			}
			if cmd.Flags().Changed("drafts") {
				overrides["build.drafts"] = drafts
			}
			if output != "" {
				overrides["dirs.output"] = output
			}

			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}

			s, err := site.New(cfg)
			if err != nil {
				return err
			}
			opts := s.DefaultBuildOptions()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			log.Info().
				Str("output", cfg.OutputDir()).
				Bool("clean", opts.Clean).
				Bool("drafts", opts.Drafts).
				Msg("Building site")

			res, err := s.Rebuild(ctx, opts)
			if err != nil {
				return err
			}
			return r.RenderBuild(res)
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", true, commands.MsgFlagClean)
	cmd.Flags().BoolVar(&noClean, "no-clean", false, commands.MsgFlagNoClean)
	cmd.Flags().BoolVar(&drafts, "drafts", false, commands.MsgFlagDrafts)
	cmd.Flags().StringVarP(&output, "output", "o", "", commands.MsgFlagOutput)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)
	cmd.MarkFlagsMutuallyExclusive("clean", "no-clean")

	return cmd
}
