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

// Package orchestrator implements the multi-agent sample: a root dispatcher
// agent delegates each request to the specialist sub-agent that owns the
// matching tool.
package orchestrator

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

// NewAgent builds the dispatcher and its four specialists.
func NewAgent(m model.LLM, cfg *config.Config) (agent.Agent, error) {
	weatherTool, err := tools.NewWeatherReportTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create weather tool: %w", err)
	}
	calcTool, err := tools.NewCalculatorTool()
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator tool: %w", err)
	}
	newsTool, err := tools.NewFetchNewsTool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create news fetcher: %w", err)
	}
	stockTool, err := tools.NewFetchStockTool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock fetcher: %w", err)
	}

	weatherSpecialist, err := llmagent.New(llmagent.Config{
		Name:        "weather_specialist",
		Model:       m,
		Description: "Answers questions about the current weather in a city.",
		Instruction: "Answer weather questions using get_weather_report.",
		Tools:       []tool.Tool{weatherTool},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weather specialist: %w", err)
	}

	mathSpecialist, err := llmagent.New(llmagent.Config{
		Name:        "math_specialist",
		Model:       m,
		Description: "Performs arithmetic calculations.",
		Instruction: "Answer arithmetic questions using the calculate tool.",
		Tools:       []tool.Tool{calcTool},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create math specialist: %w", err)
	}

	newsSpecialist, err := llmagent.New(llmagent.Config{
		Name:        "news_specialist",
		Model:       m,
		Description: "Reports current news headlines for a topic.",
		Instruction: "Answer news questions using fetch_news_data.",
		Tools:       []tool.Tool{newsTool},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create news specialist: %w", err)
	}

	stockSpecialist, err := llmagent.New(llmagent.Config{
		Name:        "stock_specialist",
		Model:       m,
		Description: "Reports current market data for a stock symbol.",
		Instruction: "Answer stock questions using fetch_stock_data.",
		Tools:       []tool.Tool{stockTool},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stock specialist: %w", err)
	}

	return llmagent.New(llmagent.Config{
		Name:        "request_dispatcher",
		Model:       m,
		Description: "Routes each request to the weather, math, news or stock specialist.",
		Instruction: `Delegate weather requests to weather_specialist, arithmetic
to math_specialist, news to news_specialist and stock questions to
stock_specialist. If no specialist can help, reply with: "I cannot answer."`,
		SubAgents: []agent.Agent{weatherSpecialist, mathSpecialist, newsSpecialist, stockSpecialist},
	})
}

// Queries returns the fixed demo queries.
func Queries(cfg *config.Config) []string {
	return []string{
		fmt.Sprintf("What's the weather in %s?", cfg.DefaultCity),
		"What is 144 divided by 12?",
		fmt.Sprintf("Any %s news today?", cfg.DefaultNewsCategory),
		fmt.Sprintf("How is %s trading?", cfg.DefaultStockSymbol),
		"What's the meaning of life?",
	}
}

// Run executes the sample end to end against a live model.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := samples.NewLogger(cfg)

	m, err := samples.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	a, err := NewAgent(m, cfg)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	mgr, err := adksession.New("multi_agent_demo", cfg, adksession.WithLogger(logger))
	if err != nil {
		return err
	}
	if _, err := mgr.CreateRunner(ctx, a); err != nil {
		return err
	}

	fmt.Println("Multi-Agent Orchestrator - ADK Sample")
	return samples.RunQueries(ctx, mgr, logger, Queries(cfg))
}
