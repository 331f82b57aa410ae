package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/crush/internal/core/domain/config"
	"github.com/AntonioJCosta/crush/internal/core/ports"
	"github.com/AntonioJCosta/crush/internal/handlers/repl"
	"github.com/AntonioJCosta/crush/internal/handlers/ui"
)

// Exit statuses of a single line run with --command.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitSyntaxError = 2
)

// ExitCodeError asks the caller to end the process with Code.
// It carries no message of its own.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

/*
Dependencies are the collaborators the commands are built from. Factories
receive the loaded configuration so that flags and the config file are
applied before anything is created.
*/
type Dependencies struct {
	Fs             afero.Fs
	Parser         ports.LineParser
	Builtins       []string
	ConfigProvider func(path string) (ports.ConfigProvider, error)
	Interpreter    func(cfg config.Config, diagnostics io.Writer) (ports.LineInterpreter, error)
	HistoryStore   func(cfg config.Config) (ports.HistoryStore, error)
	DefaultConfig  func() (string, error)
	IsInteractive  func() bool

	// LineSource opens the terminal line editor for an interactive session.
	LineSource func(cfg config.Config, store ports.HistoryStore) (repl.LineSource, error)
}

type rootOptions struct {
	command    string
	configPath string
	noColor    bool
}

// app holds what the subcommands share once flags are parsed.
type app struct {
	deps Dependencies
	opts rootOptions
	cfg  config.Config
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "crush [script]",
		Short: "crush is a small command line interpreter.",
		Long: `crush reads lines of commands and runs them as child processes.

Commands separated by ';' run one after another. Commands joined with '&&'
run only while the previous one succeeds. Text between '"' is a single word
and '#' starts a comment. With a script argument, lines are read from the
script instead of the terminal.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd, args)
		},
	}

	rootCmd.Flags().StringVarP(&a.opts.command, "command", "c", "", "Run a single line and exit.")
	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to the YAML configuration file (default ~/.crush/config.yaml).")
	rootCmd.PersistentFlags().BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewParseCommand(deps.Parser))
	rootCmd.AddCommand(NewBuiltinsCommand(deps.Builtins))
	rootCmd.AddCommand(NewHistoryCommand(a))

	return rootCmd
}

func (a *app) loadConfig() error {
	path := a.opts.configPath
	if path == "" && a.deps.DefaultConfig != nil {
		p, err := a.deps.DefaultConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Using the default configuration.", err)))
		}
		path = p
	}

	a.cfg = config.Default()
	if path != "" && a.deps.ConfigProvider != nil {
		provider, err := a.deps.ConfigProvider(path)
		if err != nil {
			return fmt.Errorf("initializing config provider: %w", err)
		}
		if a.cfg, err = provider.Load(); err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
	}

	if a.opts.noColor || !a.cfg.Color {
		ui.SetColor(false)
	}
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	interp, err := a.deps.Interpreter(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	switch {
	case cmd.Flags().Changed("command"):
		return a.runCommandLine(cmd, interp)
	case len(args) == 1:
		return a.runScript(cmd, interp, args[0])
	case a.deps.IsInteractive != nil && a.deps.IsInteractive():
		return a.runInteractive(cmd, interp)
	default:
		source := repl.NewScannerSource(cmd.InOrStdin())
		_, err := a.newSession(cmd, source, interp).Run()
		return err
	}
}

func (a *app) runCommandLine(cmd *cobra.Command, interp ports.LineInterpreter) error {
	source := repl.NewScannerSource(strings.NewReader(a.opts.command))
	res, err := a.newSession(cmd, source, interp).Run()
	if err != nil {
		return err
	}
	switch {
	case res.Rejected > 0:
		return &ExitCodeError{Code: ExitSyntaxError}
	case res.Failures > 0:
		return &ExitCodeError{Code: ExitFailure}
	}
	return nil
}

func (a *app) runScript(cmd *cobra.Command, interp ports.LineInterpreter, path string) error {
	f, err := a.deps.Fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s script: %w", path, err)
	}
	source := repl.NewScannerSource(f)
	defer source.Close()

	_, err = a.newSession(cmd, source, interp).Run()
	return err
}

func (a *app) runInteractive(cmd *cobra.Command, interp ports.LineInterpreter) error {
	var store ports.HistoryStore
	if a.deps.HistoryStore != nil {
		s, err := a.deps.HistoryStore(a.cfg)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Warning: history is unavailable: %v", err)))
		} else {
			store = s
		}
	}

	source, err := a.deps.LineSource(a.cfg, store)
	if err != nil {
		return err
	}
	defer source.Close()

	opts := []repl.Option{repl.WithBanner(a.cfg.Banner)}
	if store != nil {
		opts = append(opts, repl.WithHistory(store))
	}
	_, err = a.newSession(cmd, source, interp, opts...).Run()
	return err
}

func (a *app) newSession(cmd *cobra.Command, source repl.LineSource, interp ports.LineInterpreter, opts ...repl.Option) *repl.Session {
	opts = append([]repl.Option{repl.WithMaxLineLength(a.cfg.MaxLineLength)}, opts...)
	return repl.NewSession(source, interp, cmd.OutOrStdout(), opts...)
}

// ExitCode maps an error returned by the root command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
