package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/runtime/terminal/export"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func NewCheckInCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record, list and delete symptom check-ins",
	}
	cmd.AddCommand(newCheckInAddCmd(env))
	cmd.AddCommand(newCheckInListCmd(env, reporter))
	cmd.AddCommand(newDeleteCmd("Delete a check-in", func(c *cobra.Command, id string) error {
		a, err := env.app()
		if err != nil {
			return err
		}
		return a.Store.DeleteCheckIn(c.Context(), id)
	}))
	return cmd
}

type CheckInAddCmd struct {
	env       *Env
	localDate string
	localTime string
	scores    map[string]int
	tags      []string
	note      string
}

func newCheckInAddCmd(env *Env) *cobra.Command {
	ac := &CheckInAddCmd{env: env}
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a check-in",
		Example: "wakestate checkin add --score sleepPressure=4 --score cognitive=3 --tag caffeine",
		RunE:    ac.run,
	}

	cmd.Flags().StringVar(&ac.localDate, "date", "", "Local date (yyyy-MM-dd), defaults to today")
	cmd.Flags().StringVar(&ac.localTime, "time", "", "Local time (HH:mm), defaults to now")
	cmd.Flags().StringToIntVar(&ac.scores, "score", nil, "Domain score 1-5, as domain=value")
	cmd.Flags().StringSliceVar(&ac.tags, "tag", nil, "Context tag")
	cmd.Flags().StringVar(&ac.note, "note", "", "Free text note")

	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func (ac *CheckInAddCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := ac.env.app()
	if err != nil {
		return err
	}

	checkIn, err := adapters.MapCheckInRequestApiToDomain(api.CheckInRequest{
		LocalDate: ac.localDate,
		LocalTime: ac.localTime,
		Scores:    ac.scores,
		Tags:      ac.tags,
		Note:      ac.note,
	}, uuid.NewString(), ac.env.Now())
	if err != nil {
		return err
	}

	if err := a.Store.SaveCheckIn(cmd.Context(), checkIn); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Check-in %s saved for %s %s\n", checkIn.ID, checkIn.LocalDate, checkIn.LocalTime)
	return nil
}

type CheckInListCmd struct {
	env      *Env
	reporter *export.Reporter
	limit    int
}

func newCheckInListCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	lc := &CheckInListCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent check-ins",
		RunE:  lc.run,
	}
	cmd.Flags().IntVar(&lc.limit, "limit", 20, "Maximum number of check-ins to show, 0 for all")
	return cmd
}

func (lc *CheckInListCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := lc.env.app()
	if err != nil {
		return err
	}

	checkIns := a.Store.GetCheckIns(cmd.Context())
	if len(checkIns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No check-ins recorded yet.")
		return nil
	}
	if lc.limit > 0 && len(checkIns) > lc.limit {
		checkIns = checkIns[:lc.limit]
	}

	rows := make([][4]string, 0, len(checkIns))
	for _, c := range checkIns {
		rows = append(rows, [4]string{c.LocalDate, c.LocalTime, c.ID, formatScores(c.Scores)})
	}
	return lc.reporter.Table([4]string{"Date", "Time", "ID", "Scores"}, rows)
}

// formatScores lists scores in display order, narcolepsy domains first.
func formatScores(scores map[domain.Domain]int) string {
	var parts []string
	for _, group := range [][]domain.Domain{domain.NarcolepsyDomains, domain.OverlappingDomains} {
		for _, d := range group {
			if v, ok := scores[d]; ok {
				parts = append(parts, fmt.Sprintf("%s=%d", d, v))
			}
		}
	}
	return strings.Join(parts, " ")
}

func newDeleteCmd(short string, del func(cmd *cobra.Command, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := del(cmd, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
