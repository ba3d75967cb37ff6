package main

import (
	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

func newCpCommand() *cobra.Command {
	var (
		force     bool
		ignore    bool
		recursive bool
		update    bool
		targetDir bool
	)

	cmd := &cobra.Command{
		Use:   "cp [flags] SOURCE... DEST",
		Short: "Copy files and directories",
		Long: `Copy SOURCE to DEST. A single SOURCE may be a glob pattern.
Without a conflict flag existing destinations are overwritten, as with cp.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			src, dest := splitSources(args)
			return ust.Copy(src, dest, transferMode(force, ignore, update, recursive, targetDir))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing destinations")
	cmd.Flags().BoolVarP(&ignore, "ignore", "i", false, "skip sources whose destination exists")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "copy directories recursively")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "overwrite only when the source is newer")
	cmd.Flags().BoolVarP(&targetDir, "target-directory", "t", false, "treat DEST as an existing directory")

	return cmd
}
