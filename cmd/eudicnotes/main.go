package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/eudicnotes/internal/cli"
	"codeberg.org/snonux/eudicnotes/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	proc := processor.NewProcessor(flags)

	// Attach the run functions
	runners := commandRunners(proc)
	cli.Walk(rootCmd, func(cmd *cobra.Command) {
		if run, ok := runners[cli.CommandPath(cmd)]; ok {
			cmd.RunE = run
		}
	})

	// Execute command
	err := rootCmd.Execute()
	if cerr := proc.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close history database: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

type runFunc func(cmd *cobra.Command, args []string) error

func commandRunners(proc *processor.Processor) map[string]runFunc {
	return map[string]runFunc{
		"render": func(cmd *cobra.Command, args []string) error {
			return proc.Render()
		},
		"recognize": func(cmd *cobra.Command, args []string) error {
			return proc.Recognize(firstArg(args))
		},
		"clear-labels": func(cmd *cobra.Command, args []string) error {
			return proc.ClearLabels(firstArg(args))
		},
		"combine": func(cmd *cobra.Command, args []string) error {
			return proc.Combine(firstArg(args))
		},
		"trim": func(cmd *cobra.Command, args []string) error {
			return proc.Trim(firstArg(args))
		},
		"history list": func(cmd *cobra.Command, args []string) error {
			return proc.HistoryList()
		},
		"history show": func(cmd *cobra.Command, args []string) error {
			return proc.HistoryShow(args[0])
		},
		"history delete": func(cmd *cobra.Command, args []string) error {
			return proc.HistoryDelete(args[0])
		},
		"history search": func(cmd *cobra.Command, args []string) error {
			return proc.HistorySearch(strings.Join(args, " "))
		},
		"history sources": func(cmd *cobra.Command, args []string) error {
			return proc.HistorySources(strings.Join(args, " "))
		},
		"history export": func(cmd *cobra.Command, args []string) error {
			return proc.HistoryExport(args[0])
		},
		"history import": func(cmd *cobra.Command, args []string) error {
			return proc.HistoryImport(args[0])
		},
		"export": func(cmd *cobra.Command, args []string) error {
			_, err := proc.Export()
			return err
		},
		"archive": func(cmd *cobra.Command, args []string) error {
			_, err := proc.Archive()
			return err
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
