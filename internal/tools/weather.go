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

// Package tools defines the function tools the sample agents call. The tools
// are deterministic or pseudo-random mocks; none of them reaches a real
// backend.
package tools

import (
	"fmt"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// WeatherArgs is the input for the weather report tool.
type WeatherArgs struct {
	City string `json:"city"`
}

// WeatherResult is the structured result of a weather lookup. Status is
// "success" or "error"; Report carries the human-readable description.
type WeatherResult struct {
	Status string `json:"status"`
	Report string `json:"report"`
}

var weatherReports = map[string]WeatherResult{
	"london":   {Status: "success", Report: "The weather in London is cloudy with a temperature of 15 degrees Celsius."},
	"paris":    {Status: "success", Report: "The weather in Paris is sunny with a temperature of 18 degrees Celsius."},
	"new york": {Status: "success", Report: "The weather in New York is partly cloudy with a temperature of 22 degrees Celsius."},
	"tokyo":    {Status: "success", Report: "The weather in Tokyo is rainy with a temperature of 20 degrees Celsius."},
	"sydney":   {Status: "success", Report: "The weather in Sydney is sunny with a temperature of 25 degrees Celsius."},
}

// WeatherReport looks up the canned weather report for a city.
func WeatherReport(ctx tool.Context, args WeatherArgs) (WeatherResult, error) {
	city := strings.ToLower(strings.TrimSpace(args.City))
	if report, ok := weatherReports[city]; ok {
		return report, nil
	}
	return WeatherResult{
		Status: "error",
		Report: fmt.Sprintf("Weather information for %q is not available.", args.City),
	}, nil
}

// NewWeatherReportTool wraps WeatherReport as a function tool.
func NewWeatherReportTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_weather_report",
		Description: "Retrieves the current weather report for a specified city.",
	}, WeatherReport)
}
