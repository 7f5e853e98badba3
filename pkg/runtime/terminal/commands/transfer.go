package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/wakestate/pkg/store/collections"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	env     *Env
	out     string
	archive bool
}

func NewExportCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as JSON or check-ins as CSV",
	}

	for _, format := range []string{"json", "csv"} {
		ec := &ExportCmd{env: env}
		sub := &cobra.Command{
			Use:   format,
			Short: "Export as " + format,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return ec.run(cmd, format)
			},
		}
		sub.Flags().StringVarP(&ec.out, "out", "o", "", "Write to this file instead of stdout")
		sub.Flags().BoolVar(&ec.archive, "archive", false, "Also upload the export to the configured S3 bucket")
		cmd.AddCommand(sub)
	}
	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, format string) error {
	a, err := ec.env.app()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	now := ec.env.Now()

	var (
		body []byte
		name string
	)
	switch format {
	case "csv":
		body = []byte(collections.ExportToCSV(a.Store.GetCheckIns(ctx)))
		name = collections.CSVFilename(now)
	default:
		if body, err = a.Store.ExportAllData(ctx, now); err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}
		name = collections.ExportFilename(now)
	}

	if ec.archive {
		if a.Archiver == nil {
			return fmt.Errorf("archiving is not configured, set archive.bucket")
		}
		key, err := a.Archiver.Archive(ctx, name, body)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Archived to %s\n", key)
	}

	if ec.out == "" {
		_, err = cmd.OutOrStdout().Write(append(body, '\n'))
		return err
	}
	if err := os.WriteFile(ec.out, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ec.out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", ec.out)
	return nil
}

func NewImportCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace data with the contents of a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.app()
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			res, err := a.Store.ImportData(cmd.Context(), raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d check-ins and %d events\n", res.CheckIns, res.Events)
			return nil
		},
	}
}
