package commands

import (
	"fmt"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/spf13/cobra"
)

func NewSettingsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := env.app()
			if err != nil {
				return err
			}
			printSettings(cmd, a.Store.GetSettings(cmd.Context()))
			return nil
		},
	})
	cmd.AddCommand(newSettingsSetCmd(env))
	return cmd
}

type SettingsSetCmd struct {
	env         *Env
	theme       string
	showContext bool
}

func newSettingsSetCmd(env *Env) *cobra.Command {
	sc := &SettingsSetCmd{env: env}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE:  sc.run,
	}
	cmd.Flags().StringVar(&sc.theme, "theme", "", "Theme: midnight, charcoal or deep-ocean")
	cmd.Flags().BoolVar(&sc.showContext, "show-context", false, "Show the overlapping symptom sliders by default")
	cmd.MarkFlagsOneRequired("theme", "show-context")
	return cmd
}

func (sc *SettingsSetCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := sc.env.app()
	if err != nil {
		return err
	}

	settings := a.Store.GetSettings(cmd.Context())
	if cmd.Flags().Changed("theme") {
		settings.Theme = domain.Theme(sc.theme)
	}
	if cmd.Flags().Changed("show-context") {
		settings.ShowContextByDefault = sc.showContext
	}

	if err := a.Store.SaveSettings(cmd.Context(), settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	printSettings(cmd, settings)
	return nil
}

func printSettings(cmd *cobra.Command, s domain.AppSettings) {
	fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\nshow context by default: %t\n", s.Theme, s.ShowContextByDefault)
}
