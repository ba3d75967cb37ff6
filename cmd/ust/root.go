package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

var cfg = LoadConfigOrDefault()

var verbosity int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ust",
	Short: "Unix-style file operations",
	Long: `ust exposes the unix-sytle-utils library on the command line.
Its subcommands mirror cp, mv, rm, grep and cmp, driven by the same
behavior flags the library takes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := ust.LogLevelFromString(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid UST_LOG_LEVEL: %w", err)
		}
		switch {
		case verbosity == 1:
			level = zerolog.InfoLevel
		case verbosity == 2:
			level = zerolog.DebugLevel
		case verbosity > 2:
			level = zerolog.TraceLevel
		}
		ust.SetLogger(ust.NewLogger(os.Stderr, level))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (repeatable)")

	// Add version command
	rootCmd.AddCommand(versionCmd)

	// Add subcommands
	rootCmd.AddCommand(newCpCommand())
	rootCmd.AddCommand(newMvCommand())
	rootCmd.AddCommand(newRmCommand())
	rootCmd.AddCommand(newGrepCommand())
	rootCmd.AddCommand(newCmpCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of ust`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ust version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// transferMode builds the Copy/Move mask from command flags. With no
// conflict flag given the commands overwrite, like cp and mv do.
func transferMode(force, ignore, update, recursive, targetDir bool) ust.Mode {
	mode := ust.FNoSet
	if force {
		mode |= ust.FForce
	}
	if ignore {
		mode |= ust.FIgnore
	}
	if update {
		mode |= ust.FUpdate
	}
	if recursive {
		mode |= ust.FRecursive
	}
	if targetDir {
		mode |= ust.FTargetDirectory
	}
	if !force && !ignore && !update {
		mode |= ust.FForce
	}
	return mode
}

// splitSources separates the trailing destination from the sources.
func splitSources(args []string) (ust.Source, string) {
	dest := args[len(args)-1]
	srcs := args[:len(args)-1]
	if len(srcs) == 1 {
		return ust.One(srcs[0]), dest
	}
	return ust.List(srcs...), dest
}

// sourceArgs builds a source from plain path arguments.
func sourceArgs(args []string) ust.Source {
	if len(args) == 1 {
		return ust.One(args[0])
	}
	return ust.List(args...)
}
