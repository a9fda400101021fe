// Package commands implements the CLI commands for swagscan.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/swagscan/internal/app"
	"go.trai.ch/swagscan/internal/build"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	flagHosts     = "hosts"
	flagRouteFile = "routefile"
	flagWorkers   = "workers"
)

// CLI represents the command line interface for swagscan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "swagscan --hosts <file> --routefile <file> [--workers N]",
		Short:         "Probe host and path combinations for exposed Swagger UI pages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runScan,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String(flagHosts, "", "File with one host per line")
	rootCmd.Flags().String(flagRouteFile, "", "File with one path suffix per line")
	rootCmd.Flags().String(flagWorkers, "", "Maximum number of requests in flight")

	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runScan(cmd *cobra.Command, _ []string) error {
	hosts, _ := cmd.Flags().GetString(flagHosts)
	routes, _ := cmd.Flags().GetString(flagRouteFile)

	if hosts == "" {
		return zerr.With(domain.ErrMissingFlag, "flag", "--"+flagHosts)
	}
	if routes == "" {
		return zerr.With(domain.ErrMissingFlag, "flag", "--"+flagRouteFile)
	}

	workers := 0
	if cmd.Flags().Changed(flagWorkers) {
		raw, _ := cmd.Flags().GetString(flagWorkers)
		workers = ParseWorkers(raw)
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		HostsFile:  hosts,
		RoutesFile: routes,
		Workers:    workers,
	})
}

// ParseWorkers converts the --workers value. Anything that is not a positive
// integer yields domain.DefaultWorkers.
func ParseWorkers(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return domain.DefaultWorkers
	}
	return n
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
