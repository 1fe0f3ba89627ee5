package main

import (
	"context"

	"github.com/on-the-ground/monads_in_go/effects/binding"
	"github.com/on-the-ground/monads_in_go/effects/console"
	"github.com/on-the-ground/monads_in_go/effects/log"
	"github.com/on-the-ground/monads_in_go/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newRootCmd builds the command tree. environ replaces the process environment when
// non-nil.
func newRootCmd(environ map[string]string) *cobra.Command {
	a := &app{environ: environ}

	root := &cobra.Command{
		Use:   "monads",
		Short: "Side effects and the writer monad, by example",
		Long: `monads contrasts two ways of building a program.

  imperative  reassigns variables, prompts for a password and indexes into it
  logs        chains pure functions whose results carry their own history`,
		SilenceUsage: true,
	}
	root.AddCommand(newLogsCmd(a), newImperativeCmd(a))
	return root
}

// app installs the effects every subcommand runs under.
type app struct {
	environ map[string]string
}

func (a *app) loadConfig() (config.Config, error) {
	if a.environ != nil {
		return config.LoadFrom(a.environ)
	}
	return config.Load()
}

// run sets up config, the zap logger and the log, binding and console effects, calls fn,
// then tears the effects down in reverse order. Log records are flushed before run returns.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cmd, log.ParseLevel(cfg.LogLevel))
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx, endOfLog := log.WithZapEffectHandler(cmd.Context(), cfg.LogBufferSize, logger)
	defer endOfLog()

	ctx, endOfBinding := binding.WithEffectHandler(ctx, 1, cfg.BindingWorkers, cfg.Bindings())
	defer endOfBinding()

	ctx, endOfConsole := console.WithEffectHandler(ctx, cfg.ConsoleBufferSize, cmd.InOrStdin(), cmd.OutOrStdout())
	defer endOfConsole()

	log.LogEff(ctx, log.LogDebug, "effects ready", map[string]interface{}{
		"command":  cmd.Name(),
		"logLevel": cfg.LogLevel,
	})
	return fn(ctx)
}

// newLogger writes human-readable records to the command's error stream so they never
// mix with program output.
func newLogger(cmd *cobra.Command, level log.LogLevel) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level.ZapLevel(),
	)
	return zap.New(core)
}
