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

package assistant

import (
	"testing"

	"github.com/adk-samples/go-agent-samples/internal/config"
	"github.com/adk-samples/go-agent-samples/internal/samples/sampletest"
)

func TestNewAgent(t *testing.T) {
	a, err := NewAgent(sampletest.NewStubModel())
	if err != nil {
		t.Fatalf("NewAgent failed: %v", err)
	}
	if got, want := a.Name(), "weather_assistant"; got != want {
		t.Errorf("agent name = %q, want %q", got, want)
	}
	if got := len(a.SubAgents()); got != 0 {
		t.Errorf("assistant has %d sub-agents, want 0", got)
	}
}

func TestQueries(t *testing.T) {
	cfg := &config.Config{DefaultCity: "Paris"}
	queries := Queries(cfg)
	if len(queries) == 0 {
		t.Fatal("no demo queries")
	}
	if want := "What's the weather in Paris?"; queries[0] != want {
		t.Errorf("first query = %q, want %q", queries[0], want)
	}
}
