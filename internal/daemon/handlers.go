package daemon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/theirongolddev/splitabill/internal/assistant"
	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/model"
	"github.com/theirongolddev/splitabill/internal/session"
)

var (
	errSessionActive = errors.New("a session is already active; log out first")
	errNoSession     = errors.New("no active session")
)

// amountText accepts a JSON number or string and keeps its text so it can
// go through budget.ParseAmount like form input.
type amountText string

func (a *amountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amountText(s)
		return nil
	}
	*a = amountText(b)
	return nil
}

func (a amountText) value() float64 { return budget.ParseAmount(string(a)) }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Demo     bool   `json:"demo"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// LoginResponse is returned when a session starts.
type LoginResponse struct {
	Token    string            `json:"token"`
	User     session.User      `json:"user"`
	Currency currency.Currency `json:"currency"`
}

type amountRequest struct {
	Amount amountText `json:"amount"`
}

type expenseRequest struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Planned  amountText `json:"planned"`
	DueDate  string     `json:"due_date"`
}

// BudgetResponse carries the current record.
type BudgetResponse struct {
	Record       model.Record      `json:"record"`
	DisplayOrder []model.Expense   `json:"display_order"`
	Currency     currency.Currency `json:"currency"`
	Changed      bool              `json:"changed"`
}

// InsightsResponse carries everything derived from the record.
type InsightsResponse struct {
	Summary          model.Summary          `json:"summary"`
	Health           model.Health           `json:"health"`
	UtilizationLevel string                 `json:"utilization_level"`
	EfficiencyLevel  string                 `json:"efficiency_level"`
	Categories       []model.CategoryTotal  `json:"categories"`
	OverBudget       []model.Expense        `json:"over_budget"`
	UnderBudget      []model.Expense        `json:"under_budget"`
	FullyFunded      []model.Expense        `json:"fully_funded"`
	Recommendations  []model.Recommendation `json:"recommendations"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current state immediately.
	writeSSE(w, Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		Summary:   s.snapshotStatus().Summary,
	})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	var (
		u   session.User
		err error
	)
	if req.Demo {
		u, err = s.cfg.Directory.Demo()
	} else {
		u, err = s.cfg.Directory.Authenticate(req.Email, req.Password)
	}
	if err != nil {
		s.log.Warn("login failed", "email", req.Email, "err", err)
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	s.respondSession(w, u)
}

func (s *Service) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := s.cfg.Directory.Register(req.Name, req.Email, req.Password, req.Confirm)
	switch {
	case errors.Is(err, session.ErrEmailTaken):
		writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.respondSession(w, u)
}

func (s *Service) respondSession(w http.ResponseWriter, u session.User) {
	token, sess, err := s.startSession(u)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: sess.User, Currency: sess.Currency})
}

func (s *Service) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.endSession()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleBudget(w http.ResponseWriter, _ *http.Request) {
	s.respondBudget(w, false)
}

func (s *Service) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decode(w, r, &req) {
		return
	}
	_, changed := s.mutate(EventDeposit, func(st *budget.Store) (bool, string) {
		st.SetDeposit(req.Amount.value())
		return true, ""
	})
	s.respondBudget(w, changed)
}

func (s *Service) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decode(w, r, &req) {
		return
	}
	_, changed := s.mutate(EventExpenseAdded, func(st *budget.Store) (bool, string) {
		e, ok := st.AddExpense(budget.ExpenseInput{
			Name:     req.Name,
			Category: req.Category,
			Planned:  string(req.Planned),
			DueDate:  req.DueDate,
		})
		return ok, e.ID
	})
	s.respondBudget(w, changed)
}

func (s *Service) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, changed := s.mutate(EventExpenseRemoved, func(st *budget.Store) (bool, string) {
		return st.RemoveExpense(id), id
	})
	if !changed {
		writeError(w, http.StatusNotFound, fmt.Errorf("expense %q not found", id))
		return
	}
	s.respondBudget(w, true)
}

func (s *Service) handleActual(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req amountRequest
	if !decode(w, r, &req) {
		return
	}
	_, changed := s.mutate(EventActual, func(st *budget.Store) (bool, string) {
		return st.RecordActual(id, req.Amount.value()), id
	})
	if !changed {
		writeError(w, http.StatusNotFound, fmt.Errorf("expense %q not found", id))
		return
	}
	s.respondBudget(w, true)
}

func (s *Service) handleAllocate(w http.ResponseWriter, r *http.Request) {
	policy, err := budget.ParsePolicy(r.PathValue("policy"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	_, changed := s.mutate(EventAllocated, func(st *budget.Store) (bool, string) {
		return st.Allocate(policy), ""
	})
	s.respondBudget(w, changed)
}

func (s *Service) handleClear(w http.ResponseWriter, _ *http.Request) {
	_, changed := s.mutate(EventCleared, func(st *budget.Store) (bool, string) {
		st.ClearAllocations()
		return true, ""
	})
	s.respondBudget(w, changed)
}

func (s *Service) handleInsights(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	if s.sess == nil {
		s.mu.RUnlock()
		writeError(w, http.StatusUnauthorized, errNoSession)
		return
	}
	rec := s.sess.Budget.Record()
	s.mu.RUnlock()

	sum := budget.Summarize(rec)
	writeJSON(w, http.StatusOK, InsightsResponse{
		Summary:          sum,
		Health:           budget.HealthOf(rec),
		UtilizationLevel: budget.UtilizationLevel(sum.AllocationPercentage),
		EfficiencyLevel:  budget.EfficiencyLevel(sum.SpendingEfficiency),
		Categories:       budget.CategoryRollup(rec),
		OverBudget:       budget.OverBudget(rec),
		UnderBudget:      budget.UnderBudget(rec),
		FullyFunded:      budget.FullyFunded(rec),
		Recommendations:  budget.Recommend(rec),
	})
}

func (s *Service) handleCurrency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	if s.sess == nil {
		s.mu.Unlock()
		writeError(w, http.StatusUnauthorized, errNoSession)
		return
	}
	err := s.sess.SetCurrency(req.Code)
	var ev Event
	if err == nil {
		ev = s.newEventLocked(EventCurrency, "", s.sess.Budget.Record())
	}
	cur := s.sess.Currency
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.publishEvent(ev)
	writeJSON(w, http.StatusOK, cur)
}

func (s *Service) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	if s.bot == nil {
		s.mu.Unlock()
		writeError(w, http.StatusUnauthorized, errNoSession)
		return
	}
	msgs := s.bot.Send(req.Message)
	s.mu.Unlock()

	if msgs == nil {
		msgs = []assistant.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Service) respondBudget(w http.ResponseWriter, changed bool) {
	s.mu.RLock()
	if s.sess == nil {
		s.mu.RUnlock()
		writeError(w, http.StatusUnauthorized, errNoSession)
		return
	}
	resp := s.budgetResponseLocked(changed)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) budgetResponseLocked(changed bool) BudgetResponse {
	return BudgetResponse{
		Record:       s.sess.Budget.Record(),
		DisplayOrder: s.sess.Budget.DisplayOrder(),
		Currency:     s.sess.Currency,
		Changed:      changed,
	}
}

// authed rejects requests that do not carry the active session's token.
func (s *Service) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

		s.mu.RLock()
		valid := ok && s.sess != nil && token != "" && token == s.token
		s.mu.RUnlock()

		if !valid {
			writeError(w, http.StatusUnauthorized, errors.New("missing or invalid session token"))
			return
		}
		next(w, r)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
