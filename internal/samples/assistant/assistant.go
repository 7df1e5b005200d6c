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

// Package assistant implements the basic tool-using agent sample: a single
// LLM agent that answers weather, arithmetic and time questions with three
// function tools.
package assistant

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"

	"github.com/adk-samples/go-agent-samples/internal/adksession"
	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples"
	"github.com/adk-samples/go-agent-samples/internal/tools"
)

const instruction = `You are a helpful assistant that can check the weather,
do basic arithmetic and tell the time in major cities.

Use get_weather_report for weather questions, calculate for arithmetic and
get_city_time for time questions. Relay tool errors to the user in a friendly
way and answer concisely.`

// NewAgent builds the weather assistant agent on the given model.
func NewAgent(m model.LLM) (agent.Agent, error) {
	weatherTool, err := tools.NewWeatherReportTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create weather tool: %w", err)
	}
	calcTool, err := tools.NewCalculatorTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator tool: %w", err)
	}
	timeTool, err := tools.NewCityTimeTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create city time tool: %w", err)
	}

	return llmagent.New(llmagent.Config{
		Name:        "weather_assistant",
		Model:       m,
		Description: "Answers questions about weather, arithmetic and local time using tools.",
		Instruction: instruction,
		Tools:       []tool.Tool{weatherTool, calcTool, timeTool},
	})
}

// Queries returns the fixed demo queries.
func Queries(cfg *config.Config) []string {
	return []string{
		fmt.Sprintf("What's the weather in %s?", cfg.DefaultCity),
		"Calculate 15 * 8",
		"What time is it in Tokyo?",
		"What's the weather in Atlantis?",
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
		return fmt.Errorf("failed to create weather assistant: %w", err)
	}

	mgr, err := adksession.New("weather_assistant_demo", cfg, adksession.WithLogger(logger))
	if err != nil {
		return err
	}
	if _, err := mgr.CreateRunner(ctx, a); err != nil {
		return err
	}

	fmt.Println("Weather Assistant - ADK Sample")
	return samples.RunQueries(ctx, mgr, logger, Queries(cfg))
}
