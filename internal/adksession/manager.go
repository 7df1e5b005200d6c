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

// Package adksession provides a small façade over the ADK runner API so the
// samples do not repeat session setup boilerplate. A Manager owns one
// (app, user, session) identity triple and at most one active runner.
//
// A Manager is not safe for concurrent use; callers must serialize access or
// create separate instances.
package adksession

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"

	"github.com/adk-samples/go-agent-samples/internal/config"
)

// NoResponse is returned by RunQuery when the event stream completes without
// a final textual response. It is a soft failure, not an error, so callers
// can branch on it without error handling.
const NoResponse = "No response received from the agent."

var (
	// ErrEmptyAppName is returned by New when the application name is empty.
	ErrEmptyAppName = errors.New("application name must not be empty")
	// ErrNoRunner is returned by RunQuery before any runner has been created.
	ErrNoRunner = errors.New("no runner available: call CreateRunner first")
	// ErrNilAgent is returned by CreateRunner for a nil agent handle.
	ErrNilAgent = errors.New("agent must not be nil")
)

// Runner is the slice of the ADK runner surface the manager drives. It is
// satisfied by *runner.Runner and by test stubs.
type Runner interface {
	Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error]
}

// RunnerFactory builds a runner bound to the given agent.
type RunnerFactory func(ctx context.Context, a agent.Agent) (Runner, error)

// Identity is the triple that keys the underlying session store.
type Identity struct {
	AppName   string
	UserID    string
	SessionID string
}

func (id Identity) String() string {
	return fmt.Sprintf("%s/%s/%s", id.AppName, id.UserID, id.SessionID)
}

// Manager binds an identity triple to runners created for agents and runs
// queries against the most recently created runner.
type Manager struct {
	cfg *config.Config

	identity       Identity
	sessionService session.Service
	newRunner      RunnerFactory
	runner         Runner
	logger         zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithUserID overrides the configured default user id.
func WithUserID(userID string) Option {
	return func(m *Manager) { m.identity.UserID = userID }
}

// WithSessionID overrides the configured default session id.
func WithSessionID(sessionID string) Option {
	return func(m *Manager) { m.identity.SessionID = sessionID }
}

// WithFreshSessionID gives the manager a generated, process-unique session id
// instead of the configured default. Useful when a sample wants an isolated
// conversation per run.
func WithFreshSessionID() Option {
	return func(m *Manager) { m.identity.SessionID = "session-" + uuid.NewString() }
}

// WithSessionService replaces the in-memory session service.
func WithSessionService(svc session.Service) Option {
	return func(m *Manager) { m.sessionService = svc }
}

// WithRunnerFactory replaces the default runner factory. Tests use this to
// inject stub runners.
func WithRunnerFactory(f RunnerFactory) Option {
	return func(m *Manager) { m.newRunner = f }
}

// WithLogger attaches a logger; by default the manager is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// New creates a Manager for the given application name. The user and session
// ids default from cfg; cfg may be nil, in which case built-in defaults
// apply and no retry or timeout configuration is available.
func New(appName string, cfg *config.Config, opts ...Option) (*Manager, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, ErrEmptyAppName
	}

	m := &Manager{
		cfg: cfg,
		identity: Identity{
			AppName:   appName,
			UserID:    "default_user",
			SessionID: "default_session",
		},
		logger: zerolog.Nop(),
	}
	if cfg != nil {
		if cfg.UserID != "" {
			m.identity.UserID = cfg.UserID
		}
		if cfg.SessionID != "" {
			m.identity.SessionID = cfg.SessionID
		}
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.identity.UserID == "" || m.identity.SessionID == "" {
		return nil, fmt.Errorf("session identity %q is incomplete", m.identity)
	}
	if m.sessionService == nil {
		m.sessionService = session.InMemoryService()
	}
	if m.newRunner == nil {
		m.newRunner = m.buildRunner
	}
	return m, nil
}

// Identity returns the manager's identity triple.
func (m *Manager) Identity() Identity { return m.identity }

// CreateRunner registers the session keyed by the manager's identity triple
// and returns a runner bound to the given agent. Each call creates an
// independent runner; the manager retains the most recent one for RunQuery.
func (m *Manager) CreateRunner(ctx context.Context, a agent.Agent) (Runner, error) {
	if a == nil {
		return nil, ErrNilAgent
	}
	r, err := m.newRunner(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner for agent %q: %w", a.Name(), err)
	}
	m.runner = r
	m.logger.Debug().Str("agent", a.Name()).Stringer("identity", m.identity).Msg("runner created")
	return r, nil
}

func (m *Manager) buildRunner(ctx context.Context, a agent.Agent) (Runner, error) {
	if err := m.ensureSession(ctx); err != nil {
		return nil, err
	}
	return runner.New(runner.Config{
		AppName:        m.identity.AppName,
		Agent:          a,
		SessionService: m.sessionService,
	})
}

// ensureSession makes the stored session exist, creating it on first use so
// repeated CreateRunner calls share one conversation.
func (m *Manager) ensureSession(ctx context.Context) error {
	_, err := m.sessionService.Get(ctx, &session.GetRequest{
		AppName:   m.identity.AppName,
		UserID:    m.identity.UserID,
		SessionID: m.identity.SessionID,
	})
	if err == nil {
		return nil
	}

	// The service exports no not-found sentinel, so any lookup failure falls
	// through to Create and only the Create error is reported.
	if _, err := m.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   m.identity.AppName,
		UserID:    m.identity.UserID,
		SessionID: m.identity.SessionID,
	}); err != nil {
		return fmt.Errorf("failed to create session %q: %w", m.identity, err)
	}
	return nil
}

// RunQuery sends text as user input to the bound agent and synchronously
// drains the runner's event stream, returning the final textual response.
// It returns ErrNoRunner before CreateRunner, propagates stream errors, and
// returns the NoResponse sentinel (with a nil error) when the stream ends
// without a final textual event. RunQuery performs no retries of its own.
func (m *Manager) RunQuery(ctx context.Context, text string) (string, error) {
	if m.runner == nil {
		return "", ErrNoRunner
	}

	if m.cfg != nil && m.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.RequestTimeout)
		defer cancel()
	}

	msg := genai.NewContentFromText(text, genai.RoleUser)

	var sb strings.Builder
	events := m.runner.Run(ctx, m.identity.UserID, m.identity.SessionID, msg, agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	})
	for event, err := range events {
		if err != nil {
			return "", fmt.Errorf("agent run failed: %w", err)
		}
		if event == nil {
			continue
		}
		if text := finalResponseText(event); text != "" {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(text)
		}
	}

	if sb.Len() == 0 {
		m.logger.Warn().Stringer("identity", m.identity).Msg("event stream ended without a final response")
		return NoResponse, nil
	}
	return sb.String(), nil
}

// finalResponseText returns the text of a final response event. Partial
// streaming chunks and tool-call turns yield "".
func finalResponseText(ev *session.Event) string {
	if !ev.IsFinalResponse() || ev.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range ev.Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// RunQueryWithRetry is RunQuery wrapped in the configured bounded-retry
// policy: up to MaxRetries additional attempts with exponential backoff
// starting at RetryDelay and growing by BackoffMultiplier. The NoResponse
// sentinel is a successful result and is not retried.
func (m *Manager) RunQueryWithRetry(ctx context.Context, text string) (string, error) {
	if m.runner == nil {
		return "", ErrNoRunner
	}

	bo := backoff.NewExponentialBackOff()
	maxRetries := uint64(3)
	if m.cfg != nil {
		if m.cfg.RetryDelay > 0 {
			bo.InitialInterval = m.cfg.RetryDelay
		}
		if m.cfg.BackoffMultiplier >= 1 {
			bo.Multiplier = m.cfg.BackoffMultiplier
		}
		if m.cfg.MaxRetries >= 0 {
			maxRetries = uint64(m.cfg.MaxRetries)
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)
	return backoff.RetryWithData(func() (string, error) {
		resp, err := m.RunQuery(ctx, text)
		if errors.Is(err, ErrNoRunner) {
			return "", backoff.Permanent(err)
		}
		return resp, err
	}, policy)
}

// SimpleQuery is a one-shot convenience: it builds a manager from the
// configured defaults, creates a runner for the agent and runs a single
// query.
func SimpleQuery(ctx context.Context, cfg *config.Config, a agent.Agent, text string) (string, error) {
	appName := "adk_samples"
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}
	m, err := New(appName, cfg)
	if err != nil {
		return "", err
	}
	if _, err := m.CreateRunner(ctx, a); err != nil {
		return "", err
	}
	return m.RunQuery(ctx, text)
}
