// Package session holds the logged-in user's context: who they are, the
// budget they are working on and the currency it is displayed in.
// Nothing here outlives the process.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Login and signup failures. The messages are shown to the user as-is.
var (
	ErrMissingCredentials = errors.New("Please enter both email and password")
	ErrInvalidCredentials = errors.New("Invalid email or password. Please try again.")
	ErrIncompleteSignup   = errors.New("Please fill in all fields")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters long")
	ErrEmailTaken         = errors.New("An account with this email already exists")
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// DemoEmail identifies the account used by Demo.
const DemoEmail = "demo@splitabill.com"

// User is the public part of an account.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credential seeds a directory account.
type Credential struct {
	Name     string
	Email    string
	Password string
}

// DemoCredentials are the accounts every new directory starts with.
var DemoCredentials = []Credential{
	{Name: "Admin User", Email: "admin@splitabill.com", Password: "admin123"},
	{Name: "Demo User", Email: DemoEmail, Password: "demo123"},
	{Name: "John Doe", Email: "john@example.com", Password: "john123"},
	{Name: "Jane Smith", Email: "jane@example.com", Password: "jane123"},
}

type account struct {
	user User
	hash []byte
}

// Directory is an in-memory account list. It is safe for concurrent use.
type Directory struct {
	mu       sync.RWMutex
	accounts []account
	cost     int
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*Directory)

// WithHashCost sets the bcrypt cost used for stored passwords.
func WithHashCost(cost int) DirectoryOption {
	return func(d *Directory) { d.cost = cost }
}

// NewDirectory builds a directory holding the given accounts.
func NewDirectory(seed []Credential, opts ...DirectoryOption) (*Directory, error) {
	d := &Directory{cost: bcrypt.DefaultCost}
	for _, o := range opts {
		o(d)
	}
	for _, c := range seed {
		if err := d.add(c.Name, c.Email, c.Password); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", c.Email, err)
		}
	}
	return d, nil
}

// Authenticate checks an email and password pair.
func (d *Directory) Authenticate(email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.accounts {
		if a.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
			return User{}, ErrInvalidCredentials
		}
		return a.user, nil
	}
	return User{}, ErrInvalidCredentials
}

// Register adds a new account and returns its user.
func (d *Directory) Register(name, email, password, confirm string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" || confirm == "" {
		return User{}, ErrIncompleteSignup
	}
	if password != confirm {
		return User{}, ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return User{}, ErrPasswordTooShort
	}
	if err := d.add(name, email, password); err != nil {
		return User{}, err
	}
	return User{Name: name, Email: email}, nil
}

// Demo returns the demo account without checking a password.
func (d *Directory) Demo() (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.accounts {
		if a.user.Email == DemoEmail {
			return a.user, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Len reports how many accounts exist.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}

func (d *Directory) add(name, email, password string) error {
	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.accounts {
		if a.user.Email == email {
			return ErrEmailTaken
		}
	}
	d.accounts = append(d.accounts, account{user: User{Name: name, Email: email}, hash: hash})
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
