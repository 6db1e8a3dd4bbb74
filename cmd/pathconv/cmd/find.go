package cmd

import (
	"fmt"

	"github.com/Jumpaku/go-pathfs/osfs"
	"github.com/spf13/cobra"
)

func newFindCmd(opts *options) *cobra.Command {
	var extensions []string
	findCmd := &cobra.Command{
		Use:   "find FILE",
		Short: "Find the first existing file among candidate extensions",
		Example: `  pathconv find --ext php,html ./index`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.platform()
			if err != nil {
				return err
			}
			f, err := p.ParseFile(args[0])
			if err != nil {
				printError(cmd, args[0], err)
				return err
			}
			found, err := f.FindExtension(osfs.New(), extensions...)
			if err != nil {
				printError(cmd, args[0], err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), found.String())
			return nil
		},
	}
	findCmd.Flags().StringSliceVar(&extensions, "ext", nil, "candidate extensions in order of preference")
	_ = findCmd.MarkFlagRequired("ext")
	return findCmd
}
