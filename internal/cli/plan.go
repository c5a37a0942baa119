package cli

import (
	"github.com/arthur-debert/volt/internal/commands"
	"github.com/arthur-debert/volt/pkg/site"
	"github.com/spf13/cobra"
)

func newPlanCmd(g *globalFlags) *cobra.Command {
	var (
		drafts bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   commands.MsgPlanShort,
		Long:    commands.MsgPlanLong,
		Example: commands.MsgPlanExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, format)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("drafts") {
				overrides["build.drafts"] = drafts
			}
			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}

			s, err := site.New(cfg)
			if err != nil {
				return err
			}
			p, err := s.Plan(cfg.Build.Drafts)
			if err != nil {
				return err
			}
			return r.RenderPlan(p.Describe())
		},
	}

	cmd.Flags().BoolVar(&drafts, "drafts", false, commands.MsgFlagDrafts)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)

	return cmd
}
