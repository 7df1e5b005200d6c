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

// Package samples carries the helpers shared by the sample programs: model
// construction, logger setup and the fixed-query demo loop.
package samples

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"

	"github.com/adk-samples/go-agent-samples/internal/adksession"
	"github.com/adk-samples/go-agent-samples/internal/config"
)

// NewLogger builds the console logger the samples share, leveled from the
// configuration.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LoggerLevel()).
		With().Timestamp().Logger()
}

// NewModel creates the Gemini model every sample agent runs on.
func NewModel(ctx context.Context, cfg *config.Config) (model.LLM, error) {
	m, err := gemini.NewModel(ctx, cfg.DefaultModel, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model %q: %w", cfg.DefaultModel, err)
	}
	return m, nil
}

// RunQueries drives a fixed sequence of queries through the manager under
// the configured retry policy, printing each response to stdout. It returns
// the first hard error; the no-response sentinel is reported but does not
// stop the run.
func RunQueries(ctx context.Context, mgr *adksession.Manager, logger zerolog.Logger, queries []string) error {
	for i, query := range queries {
		fmt.Printf("\n%d. Query: %s\n", i+1, query)

		start := time.Now()
		response, err := mgr.RunQueryWithRetry(ctx, query)
		if err != nil {
			return fmt.Errorf("query %d failed: %w", i+1, err)
		}
		logger.Debug().Dur("elapsed", time.Since(start)).Int("query", i+1).Msg("query finished")

		if response == adksession.NoResponse {
			logger.Warn().Int("query", i+1).Msg("agent produced no response")
		}
		fmt.Printf("   Response: %s\n", response)
	}
	return nil
}
