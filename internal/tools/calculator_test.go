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
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		args       CalculateArgs
		wantStatus string
		wantResult float64
	}{
		{name: "add", args: CalculateArgs{Operation: "add", A: 15, B: 8}, wantStatus: "success", wantResult: 23},
		{name: "add symbol", args: CalculateArgs{Operation: "+", A: 1.5, B: 2.5}, wantStatus: "success", wantResult: 4},
		{name: "subtract", args: CalculateArgs{Operation: "subtract", A: 10, B: 4}, wantStatus: "success", wantResult: 6},
		{name: "multiply", args: CalculateArgs{Operation: "multiply", A: 15, B: 8}, wantStatus: "success", wantResult: 120},
		{name: "divide", args: CalculateArgs{Operation: "divide", A: 9, B: 3}, wantStatus: "success", wantResult: 3},
		{name: "divide by zero", args: CalculateArgs{Operation: "divide", A: 1, B: 0}, wantStatus: "error"},
		{name: "unknown operation", args: CalculateArgs{Operation: "modulo", A: 7, B: 3}, wantStatus: "error"},
		{name: "mixed case", args: CalculateArgs{Operation: " Multiply ", A: 2, B: 3}, wantStatus: "success", wantResult: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Calculate(nil, tc.args)
			if err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}
			if got.Status != tc.wantStatus {
				t.Fatalf("Calculate status = %q, want %q (error: %s)", got.Status, tc.wantStatus, got.Error)
			}
			if tc.wantStatus == "success" && got.Result != tc.wantResult {
				t.Errorf("Calculate result = %v, want %v", got.Result, tc.wantResult)
			}
			if tc.wantStatus == "error" && got.Error == "" {
				t.Error("error result carries no message")
			}
		})
	}
}

func TestWeatherReport(t *testing.T) {
	got, err := WeatherReport(nil, WeatherArgs{City: "Tokyo"})
	if err != nil {
		t.Fatalf("WeatherReport returned error: %v", err)
	}
	if got.Status != "success" {
		t.Errorf("WeatherReport(Tokyo) status = %q, want success", got.Status)
	}

	got, err = WeatherReport(nil, WeatherArgs{City: "Atlantis"})
	if err != nil {
		t.Fatalf("WeatherReport returned error: %v", err)
	}
	if got.Status != "error" {
		t.Errorf("WeatherReport(Atlantis) status = %q, want error", got.Status)
	}
}

func TestCityTime(t *testing.T) {
	got, err := CityTime(nil, CityTimeArgs{City: "london"})
	if err != nil {
		t.Fatalf("CityTime returned error: %v", err)
	}
	if got.Status != "success" || got.Report == "" {
		t.Errorf("CityTime(london) = %+v, want a success report", got)
	}

	got, err = CityTime(nil, CityTimeArgs{City: "Gotham"})
	if err != nil {
		t.Fatalf("CityTime returned error: %v", err)
	}
	if got.Status != "error" {
		t.Errorf("CityTime(Gotham) status = %q, want error", got.Status)
	}
}
