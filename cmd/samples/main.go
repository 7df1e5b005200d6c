// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command samples runs any of the agent samples from a single binary.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples"
	"github.com/adk-samples/go-agent-samples/internal/samples/aggregator"
	"github.com/adk-samples/go-agent-samples/internal/samples/assistant"
	"github.com/adk-samples/go-agent-samples/internal/samples/orchestrator"
	"github.com/adk-samples/go-agent-samples/internal/samples/pipeline"
	"github.com/adk-samples/go-agent-samples/internal/samples/refiner"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		debug   bool
		verbose bool
	)

	root := &cobra.Command{
		Use:           "samples",
		Short:         "Run the ADK Go agent samples",
		Long:          "samples runs the agent samples built on the Agent Development Kit for Go.\nConfiguration is read from the environment; see the repository README.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if debug {
			cfg.Debug = true
		}
		if verbose {
			cfg.Verbose = true
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		if cfg.Verbose || cfg.Debug {
			cfg.LogSummary(samples.NewLogger(cfg))
		}
		return cfg, nil
	}

	runSample := func(run func(context.Context, *config.Config) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "basic",
			Short: "Single agent with weather, calculator and time tools",
			Args:  cobra.NoArgs,
			RunE:  runSample(assistant.Run),
		},
		&cobra.Command{
			Use:   "pipeline",
			Short: "Sequential extract, validate and format workflow",
			Args:  cobra.NoArgs,
			RunE:  runSample(pipeline.Run),
		},
		&cobra.Command{
			Use:   "aggregator",
			Short: "Parallel weather, news and stock data fetching",
			Args:  cobra.NoArgs,
			RunE:  runSample(aggregator.Run),
		},
		&cobra.Command{
			Use:   "refiner",
			Short: "Iterative draft writing and critique loop",
			Args:  cobra.NoArgs,
			RunE:  runSample(refiner.Run),
		},
		&cobra.Command{
			Use:   "orchestrator",
			Short: "Root agent delegating to specialist sub-agents",
			Args:  cobra.NoArgs,
			RunE:  runSample(orchestrator.Run),
		},
	)
	return root
}
