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

package aggregator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples/sampletest"
)

func testConfig() *config.Config {
	return &config.Config{
		TestMode:            true,
		DefaultCity:         "Tokyo",
		DefaultNewsCategory: "technology",
		DefaultStockSymbol:  "GOOG",
	}
}

func TestNewAgent(t *testing.T) {
	a, err := NewAgent(sampletest.NewStubModel(), testConfig())
	if err != nil {
		t.Fatalf("NewAgent failed: %v", err)
	}
	if got, want := a.Name(), "data_aggregator"; got != want {
		t.Errorf("agent name = %q, want %q", got, want)
	}

	var subNames []string
	for _, sub := range a.SubAgents() {
		subNames = append(subNames, sub.Name())
	}
	want := []string{"weather_agent", "news_agent", "stock_agent"}
	if diff := cmp.Diff(want, subNames); diff != "" {
		t.Errorf("fetcher agents mismatch (-want +got):\n%s", diff)
	}
}

func TestQueriesUseConfiguredDefaults(t *testing.T) {
	queries := Queries(testConfig())
	if len(queries) == 0 {
		t.Fatal("no demo queries")
	}
	for _, fragment := range []string{"Tokyo", "technology", "GOOG"} {
		if !strings.Contains(queries[0], fragment) {
			t.Errorf("first query %q does not mention configured default %q", queries[0], fragment)
		}
	}
}
