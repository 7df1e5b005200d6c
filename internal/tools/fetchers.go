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

package tools

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"github.com/adk-samples/go-agent-samples/internal/config"
)

// The fetcher tools back the parallel aggregation sample. Each one mimics a
// remote API: pseudo-random payloads plus a simulated network delay so the
// parallel speed-up is observable. The delay is skipped in test mode.

// FetchMetadata describes a simulated fetch.
type FetchMetadata struct {
	FetchTime string `json:"fetch_time"`
	APIDelay  string `json:"api_delay"`
}

// simulateLatency sleeps for a random duration within [min, max) unless test
// mode disables it. It returns the delay applied, honoring ctx cancellation.
func simulateLatency(ctx context.Context, cfg *config.Config, min, max time.Duration) time.Duration {
	if cfg != nil && cfg.TestMode {
		return 0
	}
	delay := min + rand.N(max-min)
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
	return delay
}

func newMetadata(delay time.Duration) FetchMetadata {
	return FetchMetadata{
		FetchTime: time.Now().Format(time.RFC3339),
		APIDelay:  fmt.Sprintf("%.2fs", delay.Seconds()),
	}
}

// FetchWeatherArgs is the input for the mock weather API.
type FetchWeatherArgs struct {
	City string `json:"city"`
}

// WeatherData is the payload of a mock weather API response.
type WeatherData struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	Visibility  string `json:"visibility"`
}

// FetchWeatherResult is a mock weather API response.
type FetchWeatherResult struct {
	Status   string        `json:"status"`
	Source   string        `json:"source"`
	City     string        `json:"city"`
	Data     WeatherData   `json:"data"`
	Metadata FetchMetadata `json:"metadata"`
}

var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy", "Snowy", "Foggy"}

// NewFetchWeatherTool builds the mock weather fetcher for the aggregator.
func NewFetchWeatherTool(cfg *config.Config) (tool.Tool, error) {
	handler := func(ctx tool.Context, args FetchWeatherArgs) (FetchWeatherResult, error) {
		delay := simulateLatency(ctx, cfg, 800*time.Millisecond, 2*time.Second)
		return FetchWeatherResult{
			Status: "success",
			Source: "weather_api",
			City:   args.City,
			Data: WeatherData{
				Temperature: fmt.Sprintf("%d°C", rand.IntN(41)-5),
				Condition:   weatherConditions[rand.IntN(len(weatherConditions))],
				Humidity:    fmt.Sprintf("%d%%", 30+rand.IntN(61)),
				WindSpeed:   fmt.Sprintf("%d km/h", rand.IntN(26)),
				Visibility:  fmt.Sprintf("%d km", 5+rand.IntN(16)),
			},
			Metadata: newMetadata(delay),
		}, nil
	}
	return functiontool.New(functiontool.Config{
		Name:        "fetch_weather_data",
		Description: "Fetches current weather data for a specified city from the weather API.",
	}, handler)
}

// FetchNewsArgs is the input for the mock news API.
type FetchNewsArgs struct {
	Topic string `json:"topic"`
}

// NewsData is the payload of a mock news API response.
type NewsData struct {
	Headlines     []string `json:"headlines"`
	TotalArticles int      `json:"total_articles"`
	TrendingScore int      `json:"trending_score"`
	Sentiment     string   `json:"sentiment"`
}

// FetchNewsResult is a mock news API response.
type FetchNewsResult struct {
	Status   string        `json:"status"`
	Source   string        `json:"source"`
	Topic    string        `json:"topic"`
	Data     NewsData      `json:"data"`
	Metadata FetchMetadata `json:"metadata"`
}

var newsSentiments = []string{"positive", "neutral", "mixed"}

// NewFetchNewsTool builds the mock news fetcher for the aggregator.
func NewFetchNewsTool(cfg *config.Config) (tool.Tool, error) {
	handler := func(ctx tool.Context, args FetchNewsArgs) (FetchNewsResult, error) {
		delay := simulateLatency(ctx, cfg, time.Second, 2500*time.Millisecond)
		topic := args.Topic
		if topic == "" && cfg != nil {
			topic = cfg.DefaultNewsCategory
		}
		headlines := []string{
			fmt.Sprintf("Breaking: major developments in the %s sector", topic),
			fmt.Sprintf("Analysis: the future of %s looks promising", topic),
			fmt.Sprintf("Expert opinion: %s trends to watch", topic),
		}
		return FetchNewsResult{
			Status: "success",
			Source: "news_api",
			Topic:  topic,
			Data: NewsData{
				Headlines:     headlines,
				TotalArticles: 50 + rand.IntN(451),
				TrendingScore: 60 + rand.IntN(41),
				Sentiment:     newsSentiments[rand.IntN(len(newsSentiments))],
			},
			Metadata: newMetadata(delay),
		}, nil
	}
	return functiontool.New(functiontool.Config{
		Name:        "fetch_news_data",
		Description: "Fetches current news headlines for a specified topic from the news API.",
	}, handler)
}

// FetchStockArgs is the input for the mock financial API.
type FetchStockArgs struct {
	Symbol string `json:"symbol"`
}

// StockData is the payload of a mock financial API response.
type StockData struct {
	CurrentPrice  string `json:"current_price"`
	Change        string `json:"change"`
	ChangePercent string `json:"change_percent"`
	Volume        string `json:"volume"`
	MarketCap     string `json:"market_cap"`
	PERatio       string `json:"pe_ratio"`
}

// FetchStockResult is a mock financial API response.
type FetchStockResult struct {
	Status   string        `json:"status"`
	Source   string        `json:"source"`
	Symbol   string        `json:"symbol"`
	Data     StockData     `json:"data"`
	Metadata FetchMetadata `json:"metadata"`
}

// NewFetchStockTool builds the mock stock fetcher for the aggregator.
func NewFetchStockTool(cfg *config.Config) (tool.Tool, error) {
	handler := func(ctx tool.Context, args FetchStockArgs) (FetchStockResult, error) {
		delay := simulateLatency(ctx, cfg, 500*time.Millisecond, 1800*time.Millisecond)
		symbol := strings.ToUpper(strings.TrimSpace(args.Symbol))
		if symbol == "" && cfg != nil {
			symbol = cfg.DefaultStockSymbol
		}
		price := 50 + rand.Float64()*450
		change := rand.Float64()*40 - 20
		return FetchStockResult{
			Status: "success",
			Source: "financial_api",
			Symbol: symbol,
			Data: StockData{
				CurrentPrice:  fmt.Sprintf("$%.2f", price),
				Change:        fmt.Sprintf("%+.2f", change),
				ChangePercent: fmt.Sprintf("%+.2f%%", change/price*100),
				Volume:        fmt.Sprintf("%d", 100_000+rand.IntN(9_900_001)),
				MarketCap:     fmt.Sprintf("$%dB", 1+rand.IntN(100)),
				PERatio:       fmt.Sprintf("%.1f", 10+rand.Float64()*20),
			},
			Metadata: newMetadata(delay),
		}, nil
	}
	return functiontool.New(functiontool.Config{
		Name:        "fetch_stock_data",
		Description: "Fetches current market data for a specified stock symbol from the financial API.",
	}, handler)
}
