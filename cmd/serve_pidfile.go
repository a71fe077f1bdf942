package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// serverState is written to the pid file while the server runs.
type serverState struct {
	PID       int       `json:"pid"`
	Addr      string    `json:"addr"`
	StartedAt time.Time `json:"started_at"`
}

// pidFile is the path of a running server's state file.
type pidFile string

func (p pidFile) write(st serverState) error {
	if err := os.MkdirAll(filepath.Dir(string(p)), 0o750); err != nil {
		return fmt.Errorf("create server directory: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(string(p), append(data, '\n'), 0o600)
}

func (p pidFile) read() (serverState, error) {
	var st serverState
	data, err := os.ReadFile(string(p))
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parsing %s: %w", p, err)
	}
	if st.PID <= 0 {
		return st, fmt.Errorf("invalid pid in %s", p)
	}
	return st, nil
}

func (p pidFile) remove() {
	_ = os.Remove(string(p))
}

// ensureNotRunning fails if a live process owns the file and clears stale
// files left by a crash.
func (p pidFile) ensureNotRunning() error {
	st, err := p.read()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err == nil && processAlive(st.PID) {
		return fmt.Errorf("server already running (pid %d)", st.PID)
	}
	p.remove()
	return nil
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

// withoutFlag drops a boolean flag from an argument list, in both its bare
// and --flag=value forms.
func withoutFlag(args []string, flag string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			continue
		}
		out = append(out, a)
	}
	return out
}
