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

// Package aggregator implements the parallel processing sample: weather,
// news and stock agents fetch their data sources concurrently under a
// parallel workflow agent.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/parallelagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"

	"github.com/adk-samples/go-agent-samples/internal/adksession"
	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples"
	"github.com/adk-samples/go-agent-samples/internal/tools"
)

// NewAgent builds the parallel data aggregator. The three fetcher agents run
// concurrently; each writes its result under its own output key.
func NewAgent(m model.LLM, cfg *config.Config) (agent.Agent, error) {
	weatherTool, err := tools.NewFetchWeatherTool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather fetcher: %w", err)
	}
	newsTool, err := tools.NewFetchNewsTool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create news fetcher: %w", err)
	}
	stockTool, err := tools.NewFetchStockTool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock fetcher: %w", err)
	}

	weatherAgent, err := llmagent.New(llmagent.Config{
		Name:        "weather_agent",
		Model:       m,
		Description: "Fetches weather information for specified cities.",
		Instruction: `You are a weather data agent. Extract the city from the
user's request, call fetch_weather_data with it and return the weather
information.`,
		Tools:     []tool.Tool{weatherTool},
		OutputKey: "weather_info",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weather agent: %w", err)
	}

	newsAgent, err := llmagent.New(llmagent.Config{
		Name:        "news_agent",
		Model:       m,
		Description: "Fetches news information for specified topics.",
		Instruction: `You are a news data agent. Extract the topic from the
user's request, call fetch_news_data with it and return the news information.`,
		Tools:     []tool.Tool{newsTool},
		OutputKey: "news_info",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create news agent: %w", err)
	}

	stockAgent, err := llmagent.New(llmagent.Config{
		Name:        "stock_agent",
		Model:       m,
		Description: "Fetches stock market information for specified symbols.",
		Instruction: `You are a stock data agent. Extract the stock symbol from
the user's request, call fetch_stock_data with it and return the stock
information.`,
		Tools:     []tool.Tool{stockTool},
		OutputKey: "stock_info",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stock agent: %w", err)
	}

	return parallelagent.New(parallelagent.Config{
		AgentConfig: agent.Config{
			Name:        "data_aggregator",
			Description: "Gathers weather, news and stock data concurrently from multiple sources.",
			SubAgents:   []agent.Agent{weatherAgent, newsAgent, stockAgent},
		},
	})
}

// Queries returns the fixed demo queries, seeded from the configured
// defaults.
func Queries(cfg *config.Config) []string {
	return []string{
		fmt.Sprintf("Get data for %s weather, %s news, and %s stock",
			cfg.DefaultCity, cfg.DefaultNewsCategory, cfg.DefaultStockSymbol),
		"Fetch information for London weather, business news, and GOOGL stock",
		"Gather data for New York weather, sports news, and MSFT stock",
	}
}

// Run executes the sample end to end against a live model, timing each query
// so the parallel speed-up is visible.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := samples.NewLogger(cfg)

	m, err := samples.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	a, err := NewAgent(m, cfg)
	if err != nil {
		return fmt.Errorf("failed to create aggregator: %w", err)
	}

	// A fresh session per run keeps the timing comparable across runs.
	mgr, err := adksession.New("parallel_aggregator_demo", cfg,
		adksession.WithLogger(logger), adksession.WithFreshSessionID())
	if err != nil {
		return err
	}
	if _, err := mgr.CreateRunner(ctx, a); err != nil {
		return err
	}

	fmt.Println("Parallel Data Aggregation - ADK Sample")
	start := time.Now()
	if err := samples.RunQueries(ctx, mgr, logger, Queries(cfg)); err != nil {
		return err
	}
	fmt.Printf("\nTotal execution time: %.2f seconds\n", time.Since(start).Seconds())
	fmt.Println("Each query runs three fetcher agents in parallel; sequential execution would take roughly three times longer.")
	return nil
}
