// Package daemon serves a single budgeting session over a local HTTP JSON
// API with a server-sent event stream of record changes.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/splitabill/internal/assistant"
	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/model"
	"github.com/theirongolddev/splitabill/internal/session"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr         string
	EventsBuffer int
	Directory    *session.Directory
	Currency     currency.Currency
	StoreOptions []budget.Option
	Logger       *slog.Logger
}

// Event is emitted whenever the session or its record changes.
type Event struct {
	ID        int64         `json:"id"`
	Type      string        `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	ExpenseID string        `json:"expense_id,omitempty"`
	Summary   model.Summary `json:"summary"`
}

// Event types.
const (
	EventSnapshot       = "snapshot"
	EventLogin          = "login"
	EventLogout         = "logout"
	EventDeposit        = "deposit_set"
	EventExpenseAdded   = "expense_added"
	EventExpenseRemoved = "expense_removed"
	EventActual         = "actual_recorded"
	EventAllocated      = "allocated"
	EventCleared        = "allocations_cleared"
	EventCurrency       = "currency_changed"
)

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time     `json:"started_at"`
	SessionActive   bool          `json:"session_active"`
	User            *session.User `json:"user,omitempty"`
	Currency        string        `json:"currency,omitempty"`
	Summary         model.Summary `json:"summary"`
	EventCount      int           `json:"event_count"`
	SubscriberCount int           `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config
	log *slog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	sess        *session.Session
	token       string
	bot         *assistant.Assistant
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) (*Service, error) {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.Currency.Code == "" {
		cfg.Currency = currency.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Directory == nil {
		d, err := session.NewDirectory(session.DemoCredentials)
		if err != nil {
			return nil, fmt.Errorf("building user directory: %w", err)
		}
		cfg.Directory = d
	}

	return &Service{
		cfg:       cfg,
		log:       cfg.Logger,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}, nil
}

// Handler returns the HTTP API.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)

	mux.HandleFunc("POST /v1/session", s.handleLogin)
	mux.HandleFunc("POST /v1/signup", s.handleSignup)
	mux.HandleFunc("DELETE /v1/session", s.authed(s.handleLogout))

	mux.HandleFunc("GET /v1/budget", s.authed(s.handleBudget))
	mux.HandleFunc("PUT /v1/deposit", s.authed(s.handleDeposit))
	mux.HandleFunc("POST /v1/expenses", s.authed(s.handleAddExpense))
	mux.HandleFunc("DELETE /v1/expenses/{id}", s.authed(s.handleRemoveExpense))
	mux.HandleFunc("PUT /v1/expenses/{id}/actual", s.authed(s.handleActual))
	mux.HandleFunc("POST /v1/allocate/{policy}", s.authed(s.handleAllocate))
	mux.HandleFunc("DELETE /v1/allocations", s.authed(s.handleClear))
	mux.HandleFunc("GET /v1/insights", s.authed(s.handleInsights))
	mux.HandleFunc("PUT /v1/currency", s.authed(s.handleCurrency))
	mux.HandleFunc("POST /v1/assistant", s.authed(s.handleAssistant))
	return mux
}

// Run serves the API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("daemon http server: %w", err)
	}
}

// mutate runs fn against the active session's store under the write lock
// and publishes an event of the given type when fn reports a change.
func (s *Service) mutate(evType string, fn func(st *budget.Store) (changed bool, expenseID string)) (model.Record, bool) {
	s.mu.Lock()
	if s.sess == nil {
		s.mu.Unlock()
		return model.Record{}, false
	}
	changed, id := fn(s.sess.Budget)
	rec := s.sess.Budget.Record()
	var ev Event
	if changed {
		ev = s.newEventLocked(evType, id, rec)
	}
	s.mu.Unlock()

	if changed {
		s.publishEvent(ev)
		s.log.Debug("record changed", "event", evType, "expense_id", id)
	}
	return rec, changed
}

func (s *Service) newEventLocked(evType, expenseID string, rec model.Record) Event {
	s.nextEventID++
	return Event{
		ID:        s.nextEventID,
		Type:      evType,
		Timestamp: time.Now(),
		ExpenseID: expenseID,
		Summary:   budget.Summarize(rec),
	}
}

func (s *Service) startSession(u session.User) (string, *session.Session, error) {
	s.mu.Lock()
	if s.sess != nil {
		s.mu.Unlock()
		return "", nil, errSessionActive
	}
	s.sess = session.Start(u, s.cfg.Currency, s.cfg.StoreOptions...)
	s.token = uuid.NewString()
	s.bot = assistant.New()
	sess, token := s.sess, s.token
	ev := s.newEventLocked(EventLogin, "", sess.Budget.Record())
	s.mu.Unlock()

	s.publishEvent(ev)
	s.log.Info("session started", "user", u.Email)
	return token, sess, nil
}

func (s *Service) endSession() {
	s.mu.Lock()
	if s.sess == nil {
		s.mu.Unlock()
		return
	}
	email := s.sess.User.Email
	s.sess.End()
	s.sess, s.token, s.bot = nil, "", nil
	ev := s.newEventLocked(EventLogout, "", model.Record{})
	s.mu.Unlock()

	s.publishEvent(ev)
	s.log.Info("session ended", "user", email)
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:       s.startedAt,
		SessionActive:   s.sess != nil,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
	if s.sess != nil {
		u := s.sess.User
		st.User = &u
		st.Currency = s.sess.Currency.Code
		st.Summary = budget.Summarize(s.sess.Budget.Record())
	}
	return st
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
