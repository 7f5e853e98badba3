package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewMedicationCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "med",
		Aliases: []string{"medication"},
		Short:   "Configure medications and log doses",
	}
	cmd.AddCommand(newMedConfigCmd(env))
	cmd.AddCommand(newMedTakeCmd(env))
	cmd.AddCommand(newMedUndoCmd(env))
	cmd.AddCommand(newMedTodayCmd(env, reporter))
	cmd.AddCommand(newMedHistoryCmd(env, reporter))
	return cmd
}

type MedConfigCmd struct {
	env  *Env
	file string
}

func newMedConfigCmd(env *Env) *cobra.Command {
	mc := &MedConfigCmd{env: env}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the medication regimen, or replace it from a JSON file",
		RunE:  mc.run,
	}
	cmd.Flags().StringVar(&mc.file, "file", "", "JSON file holding the new regimen")
	return cmd
}

func (mc *MedConfigCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := mc.env.app()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if mc.file != "" {
		raw, err := os.ReadFile(mc.file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", mc.file, err)
		}
		var cfg api.MedicationConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", mc.file, err)
		}
		cfg.IsConfigured = true
		cfg.LastUpdated = mc.env.Now()
		if err := a.Store.SaveMedicationConfig(ctx, adapters.MapMedicationConfigApiToDomain(cfg)); err != nil {
			return fmt.Errorf("failed to save medication config: %w", err)
		}
	}

	cfg := a.Store.GetMedicationConfig(ctx)
	if cfg == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No medications configured.")
		return nil
	}
	out, err := json.MarshalIndent(adapters.MapMedicationConfigDomainToApi(cfg), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func newMedTakeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "take <medication-id>",
		Short: "Log a dose of a configured medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.app()
			if err != nil {
				return err
			}
			logged, err := a.Tracker.LogTaken(cmd.Context(), args[0], env.Now())
			if err != nil {
				return err
			}
			admin := logged.Administration
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s dose #%d at %s (%s). Undo with `wakestate med undo %s` until %s.\n",
				admin.BrandName, admin.AdminNumberForDay, admin.LocalTime, admin.ID, admin.ID,
				logged.UndoUntil.Format("15:04:05"))
			return nil
		},
	}
}

func newMedUndoCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <administration-id>",
		Short: "Take back a dose logged in the last 30 seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.app()
			if err != nil {
				return err
			}
			if err := a.Tracker.Undo(cmd.Context(), args[0], env.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dose %s removed\n", args[0])
			return nil
		},
	}
}

func newMedTodayCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's doses against the regimen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := env.app()
			if err != nil {
				return err
			}
			now := env.Now()
			statuses := a.Tracker.Today(cmd.Context(), now)
			if len(statuses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No medications configured.")
				return nil
			}

			rows := make([][4]string, 0, len(statuses))
			for _, s := range statuses {
				last := ""
				if len(s.Doses) > 0 {
					last = s.Doses[0].LocalTime
				}
				progress := strconv.Itoa(s.Taken) + "/" + strconv.Itoa(s.Target)
				if s.Complete {
					progress += " done"
				}
				rows = append(rows, [4]string{now.Format("2006-01-02"), last, s.BrandName + " (" + s.MedicationID + ")", progress})
			}
			return reporter.Table([4]string{"Date", "Last", "Medication", "Taken"}, rows)
		},
	}
}

type MedHistoryCmd struct {
	env          *Env
	reporter     *export.Reporter
	medicationID string
	limit        int
}

func newMedHistoryCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	hc := &MedHistoryCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged doses, newest first",
		RunE:  hc.run,
	}
	cmd.Flags().StringVar(&hc.medicationID, "med", "", "Only show doses of this medication")
	cmd.Flags().IntVar(&hc.limit, "limit", 20, "Maximum number of doses to show, 0 for all")
	return cmd
}

func (hc *MedHistoryCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := hc.env.app()
	if err != nil {
		return err
	}

	doses := a.Tracker.History(cmd.Context(), hc.medicationID)
	if len(doses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No doses logged yet.")
		return nil
	}
	if hc.limit > 0 && len(doses) > hc.limit {
		doses = doses[:hc.limit]
	}

	rows := make([][4]string, 0, len(doses))
	for _, d := range doses {
		rows = append(rows, [4]string{d.LocalDate, d.LocalTime, d.ID, fmt.Sprintf("%s #%d %s", d.BrandName, d.AdminNumberForDay, d.DoseSelected)})
	}
	return hc.reporter.Table([4]string{"Date", "Time", "ID", "Dose"}, rows)
}
