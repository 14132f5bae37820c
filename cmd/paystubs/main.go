package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/paystubs-tracker/internal/app"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
)

// cli holds the root flags and the wired application for the running command.
type cli struct {
	inmem   bool
	migrate bool
	logJSON bool

	out    io.Writer
	logger *slog.Logger
	app    *app.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		if _, werr := fmt.Fprintf(os.Stderr, "Error: %v\n", err); werr != nil {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:           "paystubs",
		Short:         "Split payroll PDFs into per-statement files and record them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.inmem, "inmem", false, "use an in-memory SQLite database and document store")
	root.PersistentFlags().BoolVar(&c.migrate, "migrate", true, "apply pending migrations on start")
	root.PersistentFlags().BoolVar(&c.logJSON, "log-json", true, "log as JSON to stderr")

	root.AddCommand(
		c.ingestCmd(),
		c.ingestDirCmd(),
		c.individualsCmd(),
		c.statementsCmd(),
		c.exportCmd(),
		c.verifyCmd(),
		c.migrateCmd(),
	)
	return root
}

// open loads configuration and wires the application. Commands call it from
// RunE so that --help never touches the database.
func (c *cli) open(ctx context.Context, migrate bool) error {
	cfg, err := common.LoadConfig()
	if err != nil {
		return err
	}
	if c.logJSON {
		cfg.Log.Format = "json"
	}
	c.logger = common.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(c.logger)

	if err := cfg.Validate(); err != nil {
		return err
	}
	a, err := app.Build(ctx, cfg, app.Options{InMemory: c.inmem, Migrate: migrate}, c.logger)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
		c.app = nil
	}
}

// run wraps a command body with open/close.
func (c *cli) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := c.open(cmd.Context(), c.migrate); err != nil {
			return err
		}
		defer c.close()
		return fn(cmd, args)
	}
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
