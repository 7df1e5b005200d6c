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

// Package pipeline implements the sequential workflow sample: raw text is
// processed through extraction, validation and formatting agents executed in
// a fixed order, each step reading its predecessor's output key.
package pipeline

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"

	"github.com/adk-samples/go-agent-samples/internal/adksession"
	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples"
	"github.com/adk-samples/go-agent-samples/internal/tools"
)

// NewAgent builds the three-step data processing pipeline.
func NewAgent(m model.LLM) (agent.Agent, error) {
	extractTool, err := tools.NewExtractTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create extract tool: %w", err)
	}
	validateTool, err := tools.NewValidateTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create validate tool: %w", err)
	}
	formatTool, err := tools.NewFormatTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create format tool: %w", err)
	}

	extractor, err := llmagent.New(llmagent.Config{
		Name:        "data_extractor",
		Model:       m,
		Description: "Extracts structured data from raw text input.",
		Instruction: `You are a data extraction agent. Call extract_data with the
user's text and return only the extraction result.`,
		Tools:     []tool.Tool{extractTool},
		OutputKey: "extraction_result",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor agent: %w", err)
	}

	validator, err := llmagent.New(llmagent.Config{
		Name:        "data_validator",
		Model:       m,
		Description: "Validates extracted data against quality rules.",
		Instruction: `You are a data validation agent. Take the extraction result
stored under 'extraction_result', call validate_data with it and return only
the validation result.`,
		Tools:     []tool.Tool{validateTool},
		OutputKey: "validation_result",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create validator agent: %w", err)
	}

	formatter, err := llmagent.New(llmagent.Config{
		Name:        "data_formatter",
		Model:       m,
		Description: "Formats validated data for final output.",
		Instruction: `You are a data formatting agent. Take the validation result
stored under 'validation_result', call format_data with it and present the
final result including the quality grade and summary.`,
		Tools:     []tool.Tool{formatTool},
		OutputKey: "final_result",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter agent: %w", err)
	}

	return sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        "data_processing_pipeline",
			Description: "Processes raw text through extraction, validation and formatting in order.",
			SubAgents:   []agent.Agent{extractor, validator, formatter},
		},
	})
}

// Queries returns the fixed demo inputs for the pipeline.
func Queries() []string {
	return []string{
		"Our Q3 sales revenue reached 2.5 million dollars, exceeding business targets by 15 percent.",
		"Customer feedback for the new product launch has been overwhelmingly positive.",
		"hi",
	}
}

// Run executes the sample end to end against a live model.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := samples.NewLogger(cfg)

	m, err := samples.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	a, err := NewAgent(m)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	mgr, err := adksession.New("sequential_pipeline_demo", cfg, adksession.WithLogger(logger))
	if err != nil {
		return err
	}
	if _, err := mgr.CreateRunner(ctx, a); err != nil {
		return err
	}

	// The whole pipeline is one long operation, not a single request.
	if cfg.LongOperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LongOperationTimeout)
		defer cancel()
	}

	fmt.Println("Data Processing Pipeline - ADK Sample")
	return samples.RunQueries(ctx, mgr, logger, Queries())
}
