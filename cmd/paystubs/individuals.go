package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/utils"
)

func (c *cli) individualsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "individuals",
		Aliases: []string{"people"},
		Short:   "Add, list, search and update individuals",
	}
	cmd.AddCommand(c.individualsAddCmd(), c.individualsListCmd(), c.individualsSearchCmd(), c.individualsUpdateCmd())
	return cmd
}

func (c *cli) individualsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register an individual before any statement names them",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			ind, err := c.app.Individuals.Add(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printJSON(ind)
		}),
	}
}

func (c *cli) individualsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List individuals with statement counts and total net pay",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string) error {
			list, err := c.app.Individuals.List(cmd.Context())
			if err != nil {
				return err
			}
			return c.printSummaries(list)
		}),
	}
}

func (c *cli) individualsSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search individuals by name",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Individuals.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return c.printSummaries(list)
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of matches")
	return cmd
}

func (c *cli) individualsUpdateCmd() *cobra.Command {
	var (
		address, phone, email string
		jsonFile              string
	)
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Set contact details for an individual",
		Long: "Set contact details for an individual. Only the given fields change.\n" +
			"With --json, the payload is read from a file (or - for stdin) and validated against the contact schema.",
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			var (
				ind *entity.Individual
				err error
			)
			if jsonFile != "" {
				raw, rerr := readInput(jsonFile)
				if rerr != nil {
					return rerr
				}
				ind, err = c.app.Individuals.ApplyContactJSON(cmd.Context(), args[0], raw)
			} else {
				var u entity.ContactUpdate
				if cmd.Flags().Changed("address") {
					u.Address = &address
				}
				if cmd.Flags().Changed("phone") {
					u.PhoneNumber = &phone
				}
				if cmd.Flags().Changed("email") {
					u.Email = &email
				}
				ind, err = c.app.Individuals.UpdateContact(cmd.Context(), args[0], u)
			}
			if err != nil {
				return err
			}
			return c.printJSON(ind)
		}),
	}
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&jsonFile, "json", "", "read a contact JSON payload from this file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("json", "address")
	cmd.MarkFlagsMutuallyExclusive("json", "phone")
	cmd.MarkFlagsMutuallyExclusive("json", "email")
	return cmd
}

func (c *cli) printSummaries(list []*entity.IndividualSummary) error {
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATEMENTS\tNET PAY\tEMAIL")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			s.ID,
			utils.Truncate(s.Name, 40),
			s.StatementCount,
			utils.ToMoney(s.TotalNetPay, c.app.Config.Export.Currency).Display(),
			utils.StrOrEmpty(s.Email),
		)
	}
	return tw.Flush()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
