package session

import (
	"time"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/currency"
)

// Session is the context of one logged-in user. It is created at login and
// dropped at logout; its budget record starts empty and is never saved.
type Session struct {
	User      User
	Budget    *budget.Store
	Currency  currency.Currency
	StartedAt time.Time
}

// Start opens a session for an authenticated user.
func Start(u User, cur currency.Currency, opts ...budget.Option) *Session {
	if cur.Code == "" {
		cur = currency.Default()
	}
	return &Session{
		User:      u,
		Budget:    budget.NewStore(opts...),
		Currency:  cur,
		StartedAt: time.Now(),
	}
}

// Login authenticates against the directory and starts a session.
func Login(d *Directory, email, password string, cur currency.Currency, opts ...budget.Option) (*Session, error) {
	u, err := d.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return Start(u, cur, opts...), nil
}

// SetCurrency switches the display currency.
func (s *Session) SetCurrency(code string) error {
	c, err := currency.Lookup(code)
	if err != nil {
		return err
	}
	s.Currency = c
	return nil
}

// End discards the budget record. Callers drop the session afterwards.
func (s *Session) End() {
	s.Budget.Reset()
}
