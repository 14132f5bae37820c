package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/ingest"
)

func (c *cli) ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <pdf>...",
		Short: "Split and record one or more payroll PDFs",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			reports := make([]*ingest.RunReport, 0, len(args))
			var errs []error
			for _, path := range args {
				report, err := c.app.Ingestor.IngestPath(cmd.Context(), path)
				if err != nil {
					errs = append(errs, common.WrapError(err, path))
					continue
				}
				reports = append(reports, report)
			}
			if err := c.printJSON(reports); err != nil {
				return err
			}
			return errors.Join(errs...)
		}),
	}
}

func (c *cli) ingestDirCmd() *cobra.Command {
	var includeHidden bool
	cmd := &cobra.Command{
		Use:   "ingest-dir <dir>",
		Short: "Ingest every PDF under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			results, stats, err := c.app.Ingestor.IngestDirectory(cmd.Context(), args[0], !includeHidden)
			out := struct {
				Stats   ingest.DirStats     `json:"stats"`
				Results []ingest.FileResult `json:"results"`
			}{stats, results}
			if perr := c.printJSON(out); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Matched)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "also ingest hidden files and directories")
	return cmd
}
