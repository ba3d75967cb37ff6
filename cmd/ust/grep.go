package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

func newGrepCommand() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "grep [flags] PATTERN ANCHOR",
		Short: "Print lines matching a pattern",
		Long: `Search ANCHOR for lines matching the regular expression PATTERN.
ANCHOR is read as a file when it names one and searched as literal text
otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			lines, err := ust.Grep(args[1], args[0], index)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "n", -1, "print only the n-th matching line (0-based)")

	return cmd
}
