package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/AntonioJCosta/crush/internal/adapters/lineparsing"
	"github.com/AntonioJCosta/crush/internal/adapters/oscommand"
	"github.com/AntonioJCosta/crush/internal/adapters/yamlconfig"
	"github.com/AntonioJCosta/crush/internal/core/domain/config"
	"github.com/AntonioJCosta/crush/internal/core/domain/grammar"
	"github.com/AntonioJCosta/crush/internal/core/ports"
	"github.com/AntonioJCosta/crush/internal/core/services/execution"
	"github.com/AntonioJCosta/crush/internal/core/services/interpreter"
	"github.com/AntonioJCosta/crush/internal/handlers/cli"
	"github.com/AntonioJCosta/crush/internal/handlers/repl"
	"github.com/AntonioJCosta/crush/internal/handlers/ui"
	"github.com/AntonioJCosta/crush/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	fs := afero.NewOsFs()

	parser, err := lineparsing.NewParser(grammar.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing line parser: %v\n", err)
		os.Exit(1)
	}

	spawner := oscommand.NewStdProcessSpawner()
	workingDir := oscommand.NewOSWorkingDirectory()
	builtins := execution.DefaultRegistry()

	deps := cli.Dependencies{
		Fs:       fs,
		Parser:   parser,
		Builtins: builtins.Names(),
		ConfigProvider: func(path string) (ports.ConfigProvider, error) {
			return yamlconfig.NewProvider(fs, path)
		},
		Interpreter: func(_ config.Config, diagnostics io.Writer) (ports.LineInterpreter, error) {
			engine := execution.NewService(spawner, workingDir, ui.NewReporter(diagnostics),
				execution.WithRegistry(builtins))
			return interpreter.NewService(parser, engine), nil
		},
		HistoryStore: func(cfg config.Config) (ports.HistoryStore, error) {
			finder := history.NewDefaultHistoryFileFinder(cfg.HistoryFile)
			return history.NewFileStore(fs, finder, cfg.HistoryLimit)
		},
		DefaultConfig: yamlconfig.DefaultPath,
		IsInteractive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		LineSource: func(cfg config.Config, store ports.HistoryStore) (repl.LineSource, error) {
			prompt := repl.NewPromptBuilder(cfg.Prompt)
			return repl.NewReadlineSource(prompt.Build, store, cfg.HistoryLimit)
		},
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	err = rootCmd.Execute()

	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	}
	os.Exit(cli.ExitCode(err))
}
