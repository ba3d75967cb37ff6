package main

import (
	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

func newRmCommand() *cobra.Command {
	var (
		recursive bool
		dir       bool
		emptyDir  bool
		fileOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "rm [flags] PATH...",
		Short: "Remove files and directories",
		Long: `Remove each PATH. Plain files need no flags; directories need -r
to remove recursively or -d when empty. PATH may be a glob pattern.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mode := ust.FNoSet
			if recursive {
				mode |= ust.FRecursive
			}
			if dir {
				mode |= ust.FRMDir
			}
			if emptyDir {
				mode |= ust.FRMEmpty
			}
			if fileOnly {
				mode |= ust.FRMFile
			}
			return ust.Remove(sourceArgs(args), mode)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")
	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "remove empty directories")
	cmd.Flags().BoolVar(&emptyDir, "empty", false, "remove directories only when empty")
	cmd.Flags().BoolVar(&fileOnly, "file", false, "refuse to remove directories")

	return cmd
}
