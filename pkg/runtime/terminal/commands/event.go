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

func NewEventCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Log, list and delete naps, cataplexy episodes and other events",
	}
	cmd.AddCommand(newEventAddCmd(env))
	cmd.AddCommand(newEventListCmd(env, reporter))
	cmd.AddCommand(newDeleteCmd("Delete an event", func(c *cobra.Command, id string) error {
		a, err := env.app()
		if err != nil {
			return err
		}
		return a.Store.DeleteEvent(c.Context(), id)
	}))
	return cmd
}

type EventAddCmd struct {
	env *Env
	req api.EventRequest

	planned bool
}

func newEventAddCmd(env *Env) *cobra.Command {
	ac := &EventAddCmd{env: env}
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Log an event",
		Example: "wakestate event add --type nap --start 13:00 --end 13:25 --planned --refreshed yes",
		RunE:    ac.run,
	}

	f := cmd.Flags()
	f.StringVar(&ac.req.Type, "type", "", "Event type: nap, cataplexy or a legacy subtype")
	f.StringVar(&ac.req.LocalDate, "date", "", "Local date (yyyy-MM-dd), defaults to today")
	f.StringVar(&ac.req.LocalTime, "time", "", "Local time (HH:mm), defaults to now")
	f.StringVar(&ac.req.SeverityTag, "severity", "", "Severity: mild, moderate or severe")
	f.StringSliceVar(&ac.req.ContextTags, "tag", nil, "Context tag")
	f.StringVar(&ac.req.Note, "note", "", "Free text note")
	f.StringVar(&ac.req.StartTime, "start", "", "Nap start (HH:mm)")
	f.StringVar(&ac.req.EndTime, "end", "", "Nap end (HH:mm)")
	f.BoolVar(&ac.planned, "planned", false, "Whether the nap was planned")
	f.StringVar(&ac.req.Refreshed, "refreshed", "", "Nap refreshed: yes, somewhat or no")
	f.StringVar(&ac.req.SleepInertiaDuration, "inertia", "", "Sleep inertia: <5m, 5-15m, 15-30m or 30m+")
	f.StringSliceVar(&ac.req.EmotionTriggers, "emotion", nil, "Cataplexy emotion trigger")
	f.StringSliceVar(&ac.req.ActivityContext, "activity", nil, "Cataplexy activity context")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (ac *EventAddCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := ac.env.app()
	if err != nil {
		return err
	}

	req := ac.req
	if cmd.Flags().Changed("planned") {
		planned := ac.planned
		req.Planned = &planned
	}

	event := adapters.MapEventRequestApiToDomain(req, uuid.NewString(), ac.env.Now())
	if err := a.Store.SaveEvent(cmd.Context(), event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Event %s (%s) saved for %s %s\n", event.ID, event.Type, event.LocalDate, event.LocalTime)
	return nil
}

type EventListCmd struct {
	env      *Env
	reporter *export.Reporter
	limit    int
}

func newEventListCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	lc := &EventListCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent events",
		RunE:  lc.run,
	}
	cmd.Flags().IntVar(&lc.limit, "limit", 20, "Maximum number of events to show, 0 for all")
	return cmd
}

func (lc *EventListCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := lc.env.app()
	if err != nil {
		return err
	}

	events := a.Store.GetEvents(cmd.Context())
	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No events recorded yet.")
		return nil
	}
	if lc.limit > 0 && len(events) > lc.limit {
		events = events[:lc.limit]
	}

	rows := make([][4]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, [4]string{e.LocalDate, e.LocalTime, e.ID, describeEvent(e)})
	}
	return lc.reporter.Table([4]string{"Date", "Time", "ID", "Event"}, rows)
}

func describeEvent(e domain.TrackingEvent) string {
	parts := []string{string(e.Type)}
	if e.SeverityTag != "" {
		parts = append(parts, string(e.SeverityTag))
	}
	if e.StartTime != "" || e.EndTime != "" {
		parts = append(parts, e.StartTime+"-"+e.EndTime)
	}
	if e.Planned != nil {
		if *e.Planned {
			parts = append(parts, "planned")
		} else {
			parts = append(parts, "unplanned")
		}
	}
	return strings.Join(parts, " ")
}
