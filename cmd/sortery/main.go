package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sortery/internal/config"
	appErrors "sortery/internal/errors"
	infrafs "sortery/internal/infra/fs"
	"sortery/internal/logging"
	"sortery/internal/presentation"
	"sortery/internal/sorter"
	"sortery/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	flagCfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "sortery",
		Short: "Sort files into date-based folders",
		Long: "Sortery moves the files of a source directory into date-derived\n" +
			"subfolders of a target directory, optionally renaming them to embed\n" +
			"the date and filtering by file type.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flagCfg, configPath)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flagCfg.SourceDir, "source", "s", "", "Source directory to sort from")
	f.StringVarP(&flagCfg.TargetDir, "target", "t", "", "Target directory to sort into")
	f.StringVarP(&configPath, "config", "c", "", "JSON config file with sorting options")
	f.StringVar(&flagCfg.DateFormat, "date-format", flagCfg.DateFormat, "strftime pattern for folder and file names")
	f.StringVar(&flagCfg.DateType, "date-type", flagCfg.DateType, `Timestamp to sort by: "m" (modified) or "c" (created)`)
	f.BoolVar(&flagCfg.PreserveName, "preserve-name", false, "Keep the original file name after the date")
	f.StringSliceVar(&flagCfg.ExcludeType, "exclude-type", nil, "File extensions to skip")
	f.StringSliceVar(&flagCfg.OnlyType, "only-type", nil, "File extensions to sort exclusively (overrides --exclude-type)")
	f.BoolVarP(&flagCfg.DryRun, "dry-run", "d", false, "Report what would be sorted without moving anything")
	f.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "Verbose output")
	f.BoolVar(&flagCfg.Plain, "plain", false, "Plain text output instead of the interactive interface")

	return cmd
}

func run(cmd *cobra.Command, flagCfg config.Config, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		if err := config.LoadFile(configPath, &cfg); err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "config", configPath, err)
		}
	}

	// Flags beat the config file, which beats defaults.
	f := cmd.Flags()
	if f.Changed("date-format") {
		cfg.DateFormat = flagCfg.DateFormat
	}
	if f.Changed("date-type") {
		cfg.DateType = flagCfg.DateType
	}
	if f.Changed("preserve-name") {
		cfg.PreserveName = flagCfg.PreserveName
	}
	if f.Changed("exclude-type") {
		cfg.ExcludeType = flagCfg.ExcludeType
	}
	if f.Changed("only-type") {
		cfg.OnlyType = flagCfg.OnlyType
	}
	cfg.SourceDir = flagCfg.SourceDir
	cfg.TargetDir = flagCfg.TargetDir
	cfg.DryRun = flagCfg.DryRun
	cfg.Verbose = flagCfg.Verbose
	cfg.Plain = flagCfg.Plain

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}

	filesystem := infrafs.OSFS{}
	if _, err := filesystem.Stat(cfg.SourceDir); err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	}

	if cfg.Plain || !isTerminal(os.Stdout) {
		return runPlain(cfg, filesystem)
	}
	return runTUI(cfg, filesystem)
}

func runPlain(cfg config.Config, filesystem infrafs.OSFS) error {
	s := &sorter.Sorter{
		FS:     filesystem,
		Logger: logging.New(os.Stderr, cfg.Verbose),
	}

	report, err := s.Sort(context.Background(), cfg.SortConfig(), cfg.DryRun)
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "sort", cfg.SourceDir, err)
	}

	printer := presentation.Printer{
		Writer:  os.Stdout,
		Verbose: cfg.Verbose,
	}
	if cfg.DryRun {
		printer.PrintDryRun(report)
	} else {
		printer.PrintExecution(report)
	}

	if !report.Clean() {
		os.Exit(1)
	}
	return nil
}

func runTUI(cfg config.Config, filesystem infrafs.OSFS) error {
	model := tui.NewModel(tui.Config{
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
		DryRun:    cfg.DryRun,
		Verbose:   cfg.Verbose,
	})
	program := tea.NewProgram(model)

	go func() {
		s := &sorter.Sorter{
			FS:     filesystem,
			Logger: logging.New(io.Discard, false),
			OnProgress: func(current, total int, name string) {
				program.Send(tui.ProgressMsg{Current: current, Total: total, File: name})
			},
		}
		report, err := s.Sort(context.Background(), cfg.SortConfig(), cfg.DryRun)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.DoneMsg{Report: report})
	}()

	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	if m, ok := final.(tui.Model); ok && !m.Report.Clean() {
		os.Exit(1)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
