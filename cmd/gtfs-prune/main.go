package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfs-prune/config"
	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-prune/internal"
	"github.com/theoremus-urban-solutions/gtfs-prune/prune"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

const missingDirMessage = "Please provide a folder path as a command-line argument."

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout, os.Stderr)))
}

func run(args []string, stdout, stderr io.Writer) ExitCode {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "gtfs-prune <feed-dir>",
		Short: "Remove banned agencies and everything that depends on them from a GTFS feed directory.",
		Long: `gtfs-prune rewrites trips.txt and stop_times.txt in place so that no trip or
stop time of a banned agency remains. agency.txt is only read; routes.txt is
rewritten when prune.rewriteRoutes is set. Configured GTFS-Realtime files are
pruned last. Arguments after the feed directory are ignored.

The banned agency list and table names come from the YAML file named by
` + config.EnvConfigPath + ` (a .env file is honoured); built-in defaults apply otherwise.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), missingDirMessage)
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				return err
			}
			log := internal.NewLogger(logOut, cfg.Logging.Level, cfg.Logging.Format)

			rep, err := prune.New(cfg, log).Run(args[0])
			if err != nil {
				attrs := []any{"error", err, "run_id", rep.RunID}
				var fe *gtfs.FileError
				if errors.As(err, &fe) {
					attrs = append(attrs, "path", fe.Path)
				}
				log.Error("prune failed", attrs...)
				return err
			}
			log.Info("prune complete", "report", rep)
			return nil
		},
	}
}
