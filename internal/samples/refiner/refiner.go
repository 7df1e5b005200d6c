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

// Package refiner implements the iterative refinement sample: a writer and a
// critic agent run inside a loop agent for a bounded number of rounds, each
// round improving the draft based on the previous critique.
package refiner

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/loopagent"
	"google.golang.org/adk/model"

	"github.com/adk-samples/go-agent-samples/internal/adksession"
	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples"
)

// DefaultMaxIterations bounds the refinement loop when the caller does not
// choose a limit.
const DefaultMaxIterations = 3

// NewAgent builds the refinement loop with the given iteration bound.
func NewAgent(m model.LLM, maxIterations uint) (agent.Agent, error) {
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}

	writer, err := llmagent.New(llmagent.Config{
		Name:        "draft_writer",
		Model:       m,
		Description: "Writes and revises short drafts.",
		Instruction: `You are a writer. On the first round, write a short draft
answering the user's request. On later rounds, revise the draft stored under
'current_draft' to address every point in the critique stored under
'critique'. Output only the new draft.`,
		OutputKey: "current_draft",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create writer agent: %w", err)
	}

	critic, err := llmagent.New(llmagent.Config{
		Name:        "draft_critic",
		Model:       m,
		Description: "Critiques drafts and suggests concrete improvements.",
		Instruction: `You are an editor. Critique the draft stored under
'current_draft': name at most three concrete, actionable improvements. If the
draft needs no further changes, say exactly "No further changes needed."`,
		OutputKey: "critique",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create critic agent: %w", err)
	}

	return loopagent.New(loopagent.Config{
		AgentConfig: agent.Config{
			Name:        "iterative_refiner",
			Description: "Alternates writing and critiquing until the iteration budget is spent.",
			SubAgents:   []agent.Agent{writer, critic},
		},
		MaxIterations: maxIterations,
	})
}

// Queries returns the fixed demo prompts.
func Queries() []string {
	return []string{
		"Write a two-sentence product announcement for a solar-powered bicycle light.",
		"Draft a short thank-you note to a conference speaker.",
	}
}

// Run executes the sample end to end against a live model.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := samples.NewLogger(cfg)

	m, err := samples.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	a, err := NewAgent(m, DefaultMaxIterations)
	if err != nil {
		return fmt.Errorf("failed to create refiner: %w", err)
	}

	mgr, err := adksession.New("iterative_refiner_demo", cfg, adksession.WithLogger(logger))
	if err != nil {
		return err
	}
	if _, err := mgr.CreateRunner(ctx, a); err != nil {
		return err
	}

	if cfg.LongOperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LongOperationTimeout)
		defer cancel()
	}

	fmt.Println("Iterative Refinement - ADK Sample")
	return samples.RunQueries(ctx, mgr, logger, Queries())
}
