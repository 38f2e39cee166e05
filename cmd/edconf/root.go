package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/edconf/internal/app"
	"github.com/dshills/edconf/internal/config"
	"github.com/dshills/edconf/internal/config/loader"
)

type cli struct {
	v       *viper.Viper
	cfgFile string
	output  string

	// userFS replaces the disk for user files; tests set it.
	userFS loader.FileSystem

	stdout io.Writer
	stderr io.Writer
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{v: app.NewViper(), stdout: stdout, stderr: stderr}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "edconf",
		Short: "Inspect and edit layered editor configuration",
		Long: `edconf reads the editor's four configuration domains (main, extensions,
highlight, keys), each a read-only default file overlaid by a user file,
and resolves complete themes and key sets from them.`,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "settings file (yaml, toml or json)")
	flags.String("defaults-dir", "", "directory holding the shipped .def files (default: embedded)")
	flags.String("user-dir", "", "directory holding user files (default: ~/.idlerc)")
	flags.String("format", "ini", "user file format: ini, toml or yaml")
	flags.String("log-level", "warn", "diagnostic level: debug, info, warn or error")
	flags.StringVarP(&c.output, "output", "o", "text", "output format: text, yaml, json or toml")

	_ = c.v.BindPFlag("defaults_dir", flags.Lookup("defaults-dir"))
	_ = c.v.BindPFlag("user_dir", flags.Lookup("user-dir"))
	_ = c.v.BindPFlag("format", flags.Lookup("format"))
	_ = c.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		newGetCmd(c),
		newSectionsCmd(c),
		newThemeCmd(c),
		newKeysCmd(c),
		newExtensionsCmd(c),
		newHelpSourcesCmd(c),
		newSetCmd(c),
		newUnsetCmd(c),
	)
	return root
}

// open loads settings and the registry they describe.
func (c *cli) open() (*config.Registry, error) {
	if _, err := parseOutput(c.output); err != nil {
		return nil, err
	}
	s, err := app.LoadSettings(c.v, c.cfgFile)
	if err != nil {
		return nil, err
	}
	return app.Open(s, app.Options{LogOutput: c.stderr, UserFS: c.userFS})
}

func (c *cli) print(data any, text func(io.Writer) error) error {
	format, err := parseOutput(c.output)
	if err != nil {
		return err
	}
	return render(c.stdout, format, data, text)
}
