package main

import (
	"context"
	"fmt"
	"os"

	"github.com/on-the-ground/monads_in_go/effects/binding"
	"github.com/on-the-ground/monads_in_go/effects/configkeys"
	"github.com/on-the-ground/monads_in_go/effects/console"
	"github.com/on-the-ground/monads_in_go/effects/log"
	"github.com/on-the-ground/monads_in_go/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

type logsOptions struct {
	start int
	steps string
	file  string
}

func newLogsCmd(a *app) *cobra.Command {
	opts := &logsOptions{}
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Run a pipeline of pure steps and show the value with its history",
		Long: `Run a pipeline of pure steps and show the value with its history.

Steps: ` + fmt.Sprint(pipeline.DefaultRegistry().Names()) + `

A pipeline can also be read from YAML:

  start: 2
  steps: [square, addOne]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				return runLogs(ctx, opts)
			})
		},
	}
	cmd.Flags().IntVar(&opts.start, "start", 2, "value to start from")
	cmd.Flags().StringVar(&opts.steps, "steps", "square,addOne", "comma-separated step names")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the pipeline from a YAML file instead of --start and --steps")
	return cmd
}

func runLogs(ctx context.Context, opts *logsOptions) error {
	def := pipeline.Definition{Start: opts.start, Steps: pipeline.ParseSteps(opts.steps)}
	source := "flags"
	if opts.file != "" {
		var err error
		if def, err = readDefinition(opts.file); err != nil {
			return err
		}
		source = opts.file
	}

	memoSize, err := binding.Get[uint32](ctx, configkeys.ConfigPipelineMemoSize)
	if err != nil {
		return fmt.Errorf("resolve memo size: %w", err)
	}

	result, err := pipeline.DefaultRegistry().Memoized(memoSize).Run(def)
	if err != nil {
		log.LogEff(ctx, log.LogError, "pipeline rejected", map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
		return err
	}

	if err := console.WriteLine(ctx, result.String()); err != nil {
		return err
	}
	log.Replay(ctx, log.LogInfo, result.Log(), map[string]interface{}{"source": source})
	return nil
}

func readDefinition(path string) (def pipeline.Definition, err error) {
	f, err := os.Open(path)
	if err != nil {
		return pipeline.Definition{}, fmt.Errorf("open pipeline: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return pipeline.Decode(f)
}
