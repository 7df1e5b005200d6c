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

package adksession

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/session"

	"github.com/adk-samples/go-agent-samples/internal/config"
)

type dummyLLM struct {
	name string
}

func (d *dummyLLM) Name() string { return d.name }

func (d *dummyLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		yield(&model.LLMResponse{
			Content: genai.NewContentFromText("dummy response", genai.RoleModel),
		}, nil)
	}
}

func newStubAgent(t *testing.T, name string) agent.Agent {
	t.Helper()
	a, err := llmagent.New(llmagent.Config{
		Name:        name,
		Model:       &dummyLLM{name: "dummy-model"},
		Description: "stub agent for manager tests",
	})
	if err != nil {
		t.Fatalf("failed to create stub agent: %v", err)
	}
	return a
}

// stubRunner replays a canned event sequence.
type stubRunner struct {
	events []*session.Event
	err    error
	runs   int
}

func (s *stubRunner) Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error] {
	s.runs++
	return func(yield func(*session.Event, error) bool) {
		if s.err != nil {
			yield(nil, s.err)
			return
		}
		for _, ev := range s.events {
			if !yield(ev, nil) {
				return
			}
		}
	}
}

func finalTextEvent(text string) *session.Event {
	ev := session.NewEvent("test-invocation")
	ev.Author = "stub_agent"
	ev.LLMResponse = model.LLMResponse{
		Content: genai.NewContentFromText(text, genai.RoleModel),
	}
	return ev
}

func functionCallEvent() *session.Event {
	ev := session.NewEvent("test-invocation")
	ev.Author = "stub_agent"
	ev.LLMResponse = model.LLMResponse{
		Content: genai.NewContentFromFunctionCall("lookup", nil, genai.RoleModel),
	}
	return ev
}

func stubFactory(r Runner) RunnerFactory {
	return func(ctx context.Context, a agent.Agent) (Runner, error) {
		return r, nil
	}
}

func defaultTestConfig() *config.Config {
	return &config.Config{
		AppName:           "demo",
		UserID:            "default_user",
		SessionID:         "default_session",
		MaxRetries:        2,
		BackoffMultiplier: 2,
	}
}

func TestNewEmptyAppName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		if _, err := New(name, defaultTestConfig()); !errors.Is(err, ErrEmptyAppName) {
			t.Errorf("New(%q) error = %v, want ErrEmptyAppName", name, err)
		}
	}
}

func TestNewDefaultsFromConfig(t *testing.T) {
	cfg := defaultTestConfig()

	want := Identity{AppName: "demo", UserID: "default_user", SessionID: "default_session"}
	for i := 0; i < 3; i++ {
		m, err := New("demo", cfg)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if diff := cmp.Diff(want, m.Identity()); diff != "" {
			t.Errorf("construction %d identity mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNewIdentityOptions(t *testing.T) {
	m, err := New("demo", defaultTestConfig(), WithUserID("alice"), WithSessionID("s-1"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	want := Identity{AppName: "demo", UserID: "alice", SessionID: "s-1"}
	if diff := cmp.Diff(want, m.Identity()); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFreshSessionID(t *testing.T) {
	m1, err := New("demo", defaultTestConfig(), WithFreshSessionID())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m2, err := New("demo", defaultTestConfig(), WithFreshSessionID())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m1.Identity().SessionID == m2.Identity().SessionID {
		t.Errorf("fresh session ids collide: %q", m1.Identity().SessionID)
	}
}

func TestRunQueryBeforeCreateRunner(t *testing.T) {
	m, err := New("demo", defaultTestConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, text := range []string{"", "ping", "what's the weather?"} {
		if _, err := m.RunQuery(context.Background(), text); !errors.Is(err, ErrNoRunner) {
			t.Errorf("RunQuery(%q) error = %v, want ErrNoRunner", text, err)
		}
	}
}

func TestCreateRunnerNilAgent(t *testing.T) {
	m, err := New("demo", defaultTestConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), nil); !errors.Is(err, ErrNilAgent) {
		t.Errorf("CreateRunner(nil) error = %v, want ErrNilAgent", err)
	}
}

func TestCreateRunnerSharedSession(t *testing.T) {
	// The default factory backs both runners with the same in-memory session:
	// the first CreateRunner creates it, the second finds it already present.
	m, err := New("demo", defaultTestConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "agent_one")); err != nil {
		t.Fatalf("first CreateRunner failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "agent_two")); err != nil {
		t.Fatalf("second CreateRunner failed: %v", err)
	}
}

func TestRunQueryNoFinalResponse(t *testing.T) {
	tests := []struct {
		name   string
		events []*session.Event
	}{
		{name: "empty stream", events: nil},
		{name: "function call only", events: []*session.Event{functionCallEvent()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New("demo", defaultTestConfig(),
				WithRunnerFactory(stubFactory(&stubRunner{events: tc.events})))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
				t.Fatalf("CreateRunner failed: %v", err)
			}
			got, err := m.RunQuery(context.Background(), "anything")
			if err != nil {
				t.Fatalf("RunQuery returned error: %v", err)
			}
			if got != NoResponse {
				t.Errorf("RunQuery = %q, want NoResponse sentinel %q", got, NoResponse)
			}
		})
	}
}

func TestRunQueryFinalResponse(t *testing.T) {
	m, err := New("demo", defaultTestConfig(),
		WithRunnerFactory(stubFactory(&stubRunner{events: []*session.Event{finalTextEvent("42")}})))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
		t.Fatalf("CreateRunner failed: %v", err)
	}
	got, err := m.RunQuery(context.Background(), "what is six times seven?")
	if err != nil {
		t.Fatalf("RunQuery returned error: %v", err)
	}
	if got != "42" {
		t.Errorf("RunQuery = %q, want %q", got, "42")
	}
}

func TestRunQueryPingPong(t *testing.T) {
	m, err := New("demo", defaultTestConfig(),
		WithRunnerFactory(stubFactory(&stubRunner{events: []*session.Event{finalTextEvent("pong")}})))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
		t.Fatalf("CreateRunner failed: %v", err)
	}
	got, err := m.RunQuery(context.Background(), "ping")
	if err != nil {
		t.Fatalf("RunQuery returned error: %v", err)
	}
	if got != "pong" {
		t.Errorf("RunQuery = %q, want %q", got, "pong")
	}
}

func TestRunQueryStreamError(t *testing.T) {
	streamErr := errors.New("model unavailable")
	m, err := New("demo", defaultTestConfig(),
		WithRunnerFactory(stubFactory(&stubRunner{err: streamErr})))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
		t.Fatalf("CreateRunner failed: %v", err)
	}
	if _, err := m.RunQuery(context.Background(), "ping"); !errors.Is(err, streamErr) {
		t.Errorf("RunQuery error = %v, want wrapped %v", err, streamErr)
	}
}

func TestCreateRunnerLatestWins(t *testing.T) {
	first := &stubRunner{events: []*session.Event{finalTextEvent("first")}}
	second := &stubRunner{events: []*session.Event{finalTextEvent("second")}}

	runners := []Runner{first, second}
	var created int
	factory := func(ctx context.Context, a agent.Agent) (Runner, error) {
		r := runners[created]
		created++
		return r, nil
	}

	m, err := New("demo", defaultTestConfig(), WithRunnerFactory(factory))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r1, err := m.CreateRunner(context.Background(), newStubAgent(t, "agent_one"))
	if err != nil {
		t.Fatalf("first CreateRunner failed: %v", err)
	}
	r2, err := m.CreateRunner(context.Background(), newStubAgent(t, "agent_two"))
	if err != nil {
		t.Fatalf("second CreateRunner failed: %v", err)
	}
	if r1 == r2 {
		t.Fatal("CreateRunner returned the same runner for two different agents")
	}

	got, err := m.RunQuery(context.Background(), "which one?")
	if err != nil {
		t.Fatalf("RunQuery returned error: %v", err)
	}
	if got != "second" {
		t.Errorf("RunQuery = %q, want the most recently created runner's response %q", got, "second")
	}
	if first.runs != 0 {
		t.Errorf("first runner was run %d times, want 0", first.runs)
	}
	if second.runs != 1 {
		t.Errorf("second runner was run %d times, want 1", second.runs)
	}
}

// flakyRunner fails a fixed number of times before succeeding.
type flakyRunner struct {
	failures int
	calls    int
}

func (f *flakyRunner) Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error] {
	f.calls++
	call := f.calls
	return func(yield func(*session.Event, error) bool) {
		if call <= f.failures {
			yield(nil, fmt.Errorf("transient failure %d", call))
			return
		}
		yield(finalTextEvent("recovered"), nil)
	}
}

func TestRunQueryWithRetry(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.MaxRetries = 3
	cfg.RetryDelay = 1 // effectively immediate
	flaky := &flakyRunner{failures: 2}

	m, err := New("demo", cfg, WithRunnerFactory(stubFactory(flaky)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
		t.Fatalf("CreateRunner failed: %v", err)
	}

	got, err := m.RunQueryWithRetry(context.Background(), "ping")
	if err != nil {
		t.Fatalf("RunQueryWithRetry returned error: %v", err)
	}
	if got != "recovered" {
		t.Errorf("RunQueryWithRetry = %q, want %q", got, "recovered")
	}
	if flaky.calls != 3 {
		t.Errorf("runner called %d times, want 3", flaky.calls)
	}
}

func TestRunQueryWithRetryExhausted(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.MaxRetries = 1
	cfg.RetryDelay = 1
	flaky := &flakyRunner{failures: 10}

	m, err := New("demo", cfg, WithRunnerFactory(stubFactory(flaky)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.CreateRunner(context.Background(), newStubAgent(t, "stub_agent")); err != nil {
		t.Fatalf("CreateRunner failed: %v", err)
	}

	if _, err := m.RunQueryWithRetry(context.Background(), "ping"); err == nil {
		t.Fatal("RunQueryWithRetry succeeded, want error after retries exhausted")
	}
	if flaky.calls != 2 {
		t.Errorf("runner called %d times, want 2 (initial + 1 retry)", flaky.calls)
	}
}

func TestRunQueryWithRetryBeforeCreateRunner(t *testing.T) {
	m, err := New("demo", defaultTestConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := m.RunQueryWithRetry(context.Background(), "ping"); !errors.Is(err, ErrNoRunner) {
		t.Errorf("RunQueryWithRetry error = %v, want ErrNoRunner", err)
	}
}
