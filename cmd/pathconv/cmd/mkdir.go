package cmd

import (
	"fmt"

	"github.com/Jumpaku/go-pathfs/osfs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMkdirCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir DIR...",
		Short: "Create directories with their missing parents",
		Long: `Creates each directory and every missing parent with the mode from the
config file (dir_mode, default 0744). PATHFS_UMASK_SET=true creates them
with mode 0777.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.platform()
			if err != nil {
				return err
			}
			cfg, err := opts.config()
			if err != nil {
				printError(cmd, "failed to load config", err)
				return err
			}
			logrus.WithField("mode", fmt.Sprintf("%#o", cfg.EffectiveDirMode())).Debug("mkdir")
			for _, raw := range args {
				d, err := p.ParseDir(raw)
				if err != nil {
					printError(cmd, raw, err)
					return err
				}
				if err := d.Create(osfs.New(), cfg); err != nil {
					printError(cmd, raw, err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.String())
			}
			return nil
		},
	}
}
