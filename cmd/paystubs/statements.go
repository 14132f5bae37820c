package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/utils"
)

func (c *cli) statementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Inspect and remove recorded pay statements",
	}
	cmd.AddCommand(c.statementsListCmd(), c.statementsGetCmd(), c.statementsDeleteCmd())
	return cmd
}

func (c *cli) statementsListCmd() *cobra.Command {
	var individual, since string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List statements, newest first",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string) error {
			id, err := c.individualID(cmd, individual)
			if err != nil {
				return err
			}
			var from time.Time
			if since != "" {
				if from, err = utils.ParseYMD(since); err != nil {
					return common.InvalidArgumentErrorf("--since must be YYYY-MM-DD: %v", err)
				}
			}
			list, err := c.app.Records.List(cmd.Context(), id)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tINDIVIDUAL\tDATE\tNET PAY\tCOMPANY\tFILE")
			for _, ps := range list {
				if !from.IsZero() {
					// placeholder dates never parse and are left out of a --since listing
					d, perr := utils.ParseYMD(ps.Date)
					if perr != nil || d.Before(from) {
						continue
					}
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					ps.ID, ps.IndividualName, ps.Date,
					utils.FormatAmount(ps.Amount, c.app.Config.Export.Currency),
					ps.Company, ps.Filename)
			}
			return tw.Flush()
		}),
	}
	cmd.Flags().StringVar(&individual, "individual", "", "only statements for this individual (exact name)")
	cmd.Flags().StringVar(&since, "since", "", "only statements paid on or after this date (YYYY-MM-DD)")
	return cmd
}

func (c *cli) statementsGetCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a statement, optionally saving its document",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if save == "" {
				ps, err := c.app.Records.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				return c.printJSON(ps)
			}
			ps, data, err := c.app.Records.Document(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := os.WriteFile(save, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", save, err)
			}
			return c.printJSON(ps)
		}),
	}
	cmd.Flags().StringVar(&save, "save", "", "write the stored page to this path")
	return cmd
}

func (c *cli) statementsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a statement and its document",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ps, err := c.app.Records.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted %d (%s)\n", ps.ID, ps.Filename)
			return nil
		}),
	}
}

func (c *cli) individualID(cmd *cobra.Command, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	ind, err := c.app.Individuals.Get(cmd.Context(), name)
	if err != nil {
		return nil, err
	}
	return &ind.ID, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.InvalidArgumentErrorf("invalid statement id %q", s)
	}
	return id, nil
}
