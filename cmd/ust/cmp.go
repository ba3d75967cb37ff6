package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

func newCmpCommand() *cobra.Command {
	var bufSize int

	cmd := &cobra.Command{
		Use:   "cmp [flags] FILE1 FILE2",
		Short: "Compare two files byte by byte",
		Long: `Compare FILE1 and FILE2. Exits 0 when the contents are identical
and 1 when they differ, like cmp.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			size := bufSize
			if size <= 0 {
				size = cfg.CmpBuffer
			}
			equal, err := ust.CmpFile(args[0], args[1], size)
			if err != nil {
				return err
			}
			if !equal {
				fmt.Printf("%s %s differ\n", args[0], args[1])
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&bufSize, "buffer", "b", 0, "read buffer size in bytes (default UST_CMP_BUFFER)")

	return cmd
}
