package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sagerenn/pospell/internal/app"
	"github.com/sagerenn/pospell/internal/config"
	"github.com/sagerenn/pospell/internal/observability"
)

// errFailed signals a completed run with failing resources.
var errFailed = errors.New("spellcheck failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pospell",
		Short:         "Spellcheck gettext translation catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLanguagesCmd())

	rootCmd.PersistentFlags().String("config", "pospell.toml", "path to config file (.toml, .json, .yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("format", "", "report format (text|json)")
	rootCmd.PersistentFlags().String("wordlist-dir", "", "directory of <lang>.txt word lists")
	return rootCmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit status: 0 for a clean
// run, 1 when resources failed, 2 for usage or setup errors.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		_, _ = io.WriteString(stderr, "pospell: "+err.Error()+"\n")
		return 2
	}
}

// setup loads the configuration, applies flag overrides and builds the app.
func setup(cmd *cobra.Command) (*app.App, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := flags.GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := flags.GetString("wordlist-dir"); v != "" {
		cfg.WordlistDir = v
	}

	log := observability.New(cfg.Log.Level, cfg.Log.Format)
	return app.New(cfg, log)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
