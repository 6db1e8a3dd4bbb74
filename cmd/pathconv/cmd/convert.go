package cmd

import (
	"fmt"

	"github.com/Jumpaku/go-pathfs"
	"github.com/Jumpaku/go-pathfs/osfs"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	windows           bool
	unix              bool
	cygwin            bool
	driveUnixStyle    bool
	driveWindowsStyle bool
	noTrailingSlash   bool
	absolute          bool
	relativeTo        string
	wrap              string
}

func (o *convertOptions) dialect() pathfs.Platform {
	switch {
	case o.windows:
		return pathfs.Windows
	case o.unix:
		return pathfs.Unix
	default:
		return pathfs.Native
	}
}

func (o *convertOptions) flags() pathfs.Flag {
	var f pathfs.Flag
	if o.cygwin {
		f |= pathfs.FlagCygwin
	}
	if o.driveUnixStyle {
		f |= pathfs.FlagDriveUnixStyle
	}
	if o.driveWindowsStyle {
		f |= pathfs.FlagDriveWindowsStyle
	}
	if o.noTrailingSlash {
		f |= pathfs.FlagWithoutTrailingSlash
	}
	return f
}

func newConvertCmd(opts *options) *cobra.Command {
	copts := &convertOptions{}
	convertCmd := &cobra.Command{
		Use:   "convert PATH...",
		Short: "Print paths in another notation",
		Example: `  pathconv convert -w /cygdrive/c/www/
  pathconv convert -u --drive-unix-style 'C:\www\index.php'
  pathconv convert --relative-to /var/ /var/www/html/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, copts, args)
		},
	}
	f := convertCmd.Flags()
	f.BoolVarP(&copts.windows, "windows", "w", false, "print Windows notation")
	f.BoolVarP(&copts.unix, "unix", "u", false, "print Unix notation")
	f.BoolVar(&copts.cygwin, "cygwin", false, "print drives as /cygdrive/x/")
	f.BoolVar(&copts.driveUnixStyle, "drive-unix-style", false, "print drives as /X:/ in Unix notation")
	f.BoolVar(&copts.driveWindowsStyle, "drive-windows-style", false, "print drives as X:/ in Unix notation")
	f.BoolVar(&copts.noTrailingSlash, "no-trailing-slash", false, "omit the trailing separator of directories")
	f.BoolVarP(&copts.absolute, "absolute", "a", false, "resolve against the working directory")
	f.StringVar(&copts.relativeTo, "relative-to", "", "print relative to this directory")
	f.StringVar(&copts.wrap, "wrap", "", "wrap in a stream wrapper scheme such as vfs")
	convertCmd.MarkFlagsMutuallyExclusive("windows", "unix")
	convertCmd.MarkFlagsMutuallyExclusive("drive-unix-style", "drive-windows-style")
	return convertCmd
}

func runConvert(cmd *cobra.Command, opts *options, copts *convertOptions, args []string) error {
	p, err := opts.platform()
	if err != nil {
		return err
	}
	var base *pathfs.Dir
	if copts.relativeTo != "" {
		if base, err = p.ParseDir(copts.relativeTo); err != nil {
			printError(cmd, "invalid --relative-to", err)
			return err
		}
		if base, err = base.ResolveIn(osfs.New()); err != nil {
			return err
		}
	}
	for _, raw := range args {
		out, err := convert(p, raw, copts, base)
		if err != nil {
			printError(cmd, raw, err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func convert(p pathfs.Platform, raw string, copts *convertOptions, base *pathfs.Dir) (string, error) {
	if isDirPath(raw) {
		d, err := p.ParseDir(raw)
		if err != nil {
			return "", err
		}
		if copts.absolute || base != nil {
			if d, err = d.ResolveIn(osfs.New()); err != nil {
				return "", err
			}
		}
		if base != nil {
			if d, err = d.MakeRelativeTo(base); err != nil {
				return "", err
			}
		}
		if copts.wrap != "" {
			d = d.WrapWith(copts.wrap)
		}
		return d.OSPath(copts.dialect(), copts.flags())
	}

	f, err := p.ParseFile(raw)
	if err != nil {
		return "", err
	}
	if copts.absolute || base != nil {
		dir, err := f.Dir().ResolveIn(osfs.New())
		if err != nil {
			return "", err
		}
		f = f.SetDir(dir)
	}
	if base != nil {
		if f, err = f.MakeRelativeTo(base); err != nil {
			return "", err
		}
	}
	if copts.wrap != "" {
		f = f.WrapWith(copts.wrap)
	}
	return f.OSPath(copts.dialect(), copts.flags())
}
