package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestPIDFileRoundTrip(t *testing.T) {
	pf := pidFile(filepath.Join(t.TempDir(), "run", "splitabilld.pid"))
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := pf.write(serverState{PID: os.Getpid(), Addr: "127.0.0.1:9999", StartedAt: started}); err != nil {
		t.Fatalf("write() error: %v", err)
	}

	st, err := pf.read()
	if err != nil {
		t.Fatalf("read() error: %v", err)
	}
	if st.PID != os.Getpid() || st.Addr != "127.0.0.1:9999" {
		t.Errorf("read() = %+v", st)
	}
	if !st.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", st.StartedAt, started)
	}

	err = pf.ensureNotRunning()
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("ensureNotRunning() = %v, want already running", err)
	}

	pf.remove()
	if _, err := pf.read(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("read() after remove = %v, want ErrNotExist", err)
	}
}

func TestEnsureNotRunningClearsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitabilld.pid")
	if err := os.WriteFile(path, []byte("not json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := pidFile(path).ensureNotRunning(); err != nil {
		t.Fatalf("ensureNotRunning() error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("stale pid file still present: %v", err)
	}
}

func TestEnsureNotRunningMissingFile(t *testing.T) {
	pf := pidFile(filepath.Join(t.TempDir(), "absent.pid"))
	if err := pf.ensureNotRunning(); err != nil {
		t.Errorf("ensureNotRunning() error: %v", err)
	}
}

func TestWithoutFlag(t *testing.T) {
	got := withoutFlag([]string{"serve", "--detach", "--addr", ":1", "--detach=true", "--detached-x"}, "--detach")
	want := []string{"serve", "--addr", ":1", "--detached-x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("withoutFlag() = %q, want %q", got, want)
	}
}
