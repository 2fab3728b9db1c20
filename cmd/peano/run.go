package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vito/peano/pkg/ioctx"
	"github.com/vito/peano/pkg/peano"
)

var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func setupLogging(ctx context.Context, cfg Config) context.Context {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(ioctx.StderrFromContext(ctx), &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return ioctx.LoggerToContext(ctx, logger)
}

// loadConfig reads the explicit config file, or searches for one from the
// working directory. Flags take precedence over the file.
func loadConfig(cfg Config) (*peano.ProjectConfig, error) {
	var config *peano.ProjectConfig
	if cfg.ConfigFile != "" {
		loaded, err := peano.LoadProjectConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, found, err := peano.FindProjectConfig(cwd)
		if err != nil {
			return nil, err
		}
		if found != nil {
			slog.Debug("loaded config", "path", path)
			config = found
		} else {
			config = &peano.ProjectConfig{}
		}
	}

	if cfg.MaxDepth > 0 {
		config.MaxDepth = cfg.MaxDepth
	}
	if cfg.Jobs > 0 {
		config.Jobs = cfg.Jobs
	}
	return config, nil
}

// selectPrograms resolves names to programs. Names are matched in kebab
// case, so FibOfFib and fib_of_fib both select fib-of-fib.
func selectPrograms(names []string) ([]peano.Program, error) {
	if len(names) == 0 {
		return peano.Programs(), nil
	}
	progs := make([]peano.Program, 0, len(names))
	for _, name := range names {
		prog, err := peano.LookupProgram(strcase.ToKebab(name))
		if err != nil {
			return nil, err
		}
		progs = append(progs, prog)
	}
	return progs, nil
}

type result struct {
	val int
	err error
}

func run(ctx context.Context, cfg Config, args []string) error {
	config, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = config.Programs
	}
	progs, err := selectPrograms(names)
	if err != nil {
		return err
	}

	if config.MaxDepth > 0 {
		ctx = peano.WithMaxDepth(ctx, config.MaxDepth)
	}

	results := make([]result, len(progs))

	eg, gctx := errgroup.WithContext(ctx)
	if config.Jobs > 0 {
		eg.SetLimit(config.Jobs)
	}
	for i, prog := range progs {
		eg.Go(func() error {
			if slog.Default().Enabled(gctx, slog.LevelDebug) {
				slog.DebugContext(gctx, "evaluating program", "name", prog.Name, "body", pretty.Sprint(prog.Body))
			}
			val, err := prog.Eval(gctx)
			results[i] = result{val: val, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	stdout := ioctx.StdoutFromContext(ctx)

	var failed int
	for i, prog := range progs {
		res := results[i]
		switch {
		case res.err != nil:
			failed++
			fmt.Fprintf(stdout, "%s: %s\n", nameStyle.Render(prog.Name), errorStyle.Render(res.err.Error()))
		case res.val != prog.Want:
			failed++
			fmt.Fprintf(stdout, "%s = %s %s\n",
				nameStyle.Render(prog.Name),
				errorStyle.Render(strconv.Itoa(res.val)),
				dimStyle.Render(fmt.Sprintf("(want %d)", prog.Want)))
		default:
			fmt.Fprintf(stdout, "%s = %s\n", nameStyle.Render(prog.Name), resultStyle.Render(strconv.Itoa(res.val)))
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d programs failed", failed, len(progs))
	}
	return nil
}

func list(ctx context.Context) error {
	stdout := ioctx.StdoutFromContext(ctx)
	for _, prog := range peano.Programs() {
		fmt.Fprintf(stdout, "%s  %s\n", nameStyle.Render(prog.Name), dimStyle.Render(prog.Doc))
	}
	return nil
}
