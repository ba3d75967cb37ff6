package main

import (
	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

func newMvCommand() *cobra.Command {
	var (
		force     bool
		ignore    bool
		recursive bool
		update    bool
		targetDir bool
	)

	cmd := &cobra.Command{
		Use:   "mv [flags] SOURCE... DEST",
		Short: "Move files and directories",
		Long: `Move SOURCE to DEST, renaming when possible and copying then
removing otherwise. Without a conflict flag existing destinations are
overwritten, as with mv. Moving a directory across filesystems needs -r.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			src, dest := splitSources(args)
			return ust.Move(src, dest, transferMode(force, ignore, update, recursive, targetDir))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing destinations")
	cmd.Flags().BoolVarP(&ignore, "ignore", "i", false, "skip sources whose destination exists")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "allow directory moves that fall back to copying")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "overwrite only when the source is newer")
	cmd.Flags().BoolVarP(&targetDir, "target-directory", "t", false, "treat DEST as an existing directory")

	return cmd
}
