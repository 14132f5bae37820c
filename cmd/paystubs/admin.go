package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
)

func (c *cli) exportCmd() *cobra.Command {
	var format, out, individual string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export statements to XLSX or CSV",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			if format != "xlsx" && format != "csv" {
				return common.InvalidArgumentErrorf("unknown format %q (want xlsx or csv)", format)
			}
			id, err := c.individualID(cmd, individual)
			if err != nil {
				return err
			}
			if out == "" {
				out = "statements." + format
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}

			var n int
			switch format {
			case "xlsx":
				data, err := c.app.Export.StatementsXLSX(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
			case "csv":
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				n, err = c.app.Export.StatementsCSV(cmd.Context(), f, id)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return err
				}
			}
			c.logger.Info("export.written", "path", out, "format", format, "rows", n)
			fmt.Fprintln(c.out, out)
			return nil
		}),
	}
	cmd.Flags().StringVar(&format, "format", "xlsx", "xlsx or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default statements.<format>)")
	cmd.Flags().StringVar(&individual, "individual", "", "only statements for this individual (exact name)")
	return cmd
}

func (c *cli) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every recorded statement still has its document",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string) error {
			issues, err := c.app.Records.Verify(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.printJSON(issues); err != nil {
				return err
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d statements have integrity issues", len(issues))
			}
			return nil
		}),
	}
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.open(cmd.Context(), false); err != nil {
				return err
			}
			defer c.close()
			n, err := repository.Migrate(cmd.Context(), c.app.DB, c.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "applied %d migrations (%s)\n", n, c.app.DB.Dialect())
			return nil
		},
	}
}
