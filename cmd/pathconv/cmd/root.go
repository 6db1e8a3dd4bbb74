package cmd

import (
	"fmt"
	"strings"

	"github.com/Jumpaku/go-pathfs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile string
	verbose bool
	from    string
}

// NewRootCmd builds the pathconv command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "pathconv",
		Short: "Convert paths between Unix, Windows and Cygwin notations",
		Long: `pathconv parses paths written in any supported notation and prints them
in another one.

Supported notations:
  /var/www/          Unix root
  C:\www\  /C:/www/  drive letter
  \\server\share\    UNC
  /cygdrive/c/www/   Cygwin
  vfs://var/www/     stream wrapper

Directories end with a separator. Anything else is treated as a file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.from, "from", "", "platform the input is written for: unix or windows (default: native)")

	rootCmd.AddCommand(newConvertCmd(opts), newMkdirCmd(opts), newFindCmd(opts))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) platform() (pathfs.Platform, error) {
	switch strings.ToLower(o.from) {
	case "":
		return pathfs.Native, nil
	case "unix":
		return pathfs.Unix, nil
	case "windows":
		return pathfs.Windows, nil
	default:
		return 0, fmt.Errorf("unknown platform '%s'", o.from)
	}
}

func (o *options) config() (pathfs.Config, error) {
	cfg := pathfs.DefaultConfig()
	if o.cfgFile != "" {
		loaded, err := pathfs.LoadConfig(o.cfgFile)
		if err != nil {
			return pathfs.Config{}, err
		}
		cfg = loaded
	}
	return pathfs.ConfigFromEnv(cfg)
}

func isDirPath(raw string) bool {
	return strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, "\\")
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
