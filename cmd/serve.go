package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/daemon"
	"github.com/theirongolddev/splitabill/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeDetach       bool
	flagServePIDFile      string
	flagServeLogFile      string
	flagServeEventsBuffer int
	flagServeChild        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the budget HTTP API",
	Long: "Serve one budgeting session over a local JSON API. Log in with\n" +
		"POST /v1/session, then pass the returned token as a bearer token.",
	RunE: runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server process and session status",
	RunE:  runServeStatus,
}

var serveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running server",
	RunE:  runServeStop,
}

func init() {
	defaultPID := filepath.Join(dataDir(), "splitabilld.pid")
	defaultLog := filepath.Join(dataDir(), "splitabilld.log")

	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.PersistentFlags().StringVar(&flagServePIDFile, "pid-file", defaultPID, "PID file path")
	serveCmd.PersistentFlags().StringVar(&flagServeLogFile, "log-file", defaultLog, "Log file path for detached mode")
	serveCmd.PersistentFlags().IntVar(&flagServeEventsBuffer, "events-buffer", 0, "Max in-memory events retained (default from config)")

	serveCmd.Flags().BoolVar(&flagServeDetach, "detach", false, "Run the server as a background process")
	serveCmd.Flags().BoolVar(&flagServeChild, "child", false, "Internal: mark detached child process")
	_ = serveCmd.Flags().MarkHidden("child")

	serveCmd.AddCommand(serveStatusCmd)
	serveCmd.AddCommand(serveStopCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagServeDetach && flagServeChild {
		return errors.New("invalid server launch mode")
	}

	cfg := loadConfig()
	if flagServeAddr == "" {
		flagServeAddr = cfg.Server.Addr
	}
	if flagServeEventsBuffer == 0 {
		flagServeEventsBuffer = cfg.Server.EventsBuffer
	}

	pf := pidFile(flagServePIDFile)
	if err := pf.ensureNotRunning(); err != nil {
		return err
	}

	if flagServeDetach {
		return startServeDetached(pf)
	}
	return runServeForeground(pf)
}

func startServeDetached(pf pidFile) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	args := withoutFlag(os.Args[1:], "--detach")
	args = append(args, "--child")

	for _, dir := range []string{filepath.Dir(string(pf)), filepath.Dir(flagServeLogFile)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create server directory: %w", err)
		}
	}

	//nolint:gosec // log path is configured by the local user
	logf, err := os.OpenFile(flagServeLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open server log file: %w", err)
	}
	defer func() { _ = logf.Close() }()

	child := exec.Command(exe, args...) //nolint:gosec // exe/args come from current process invocation
	child.Stdout = logf
	child.Stderr = logf
	child.Env = os.Environ()

	if err := child.Start(); err != nil {
		return fmt.Errorf("start detached server: %w", err)
	}

	fmt.Printf("  Started server (pid %d)\n", child.Process.Pid)
	fmt.Printf("  PID file: %s\n", pf)
	fmt.Printf("  API: http://%s/v1/status\n", flagServeAddr)
	fmt.Printf("  Log: %s\n", flagServeLogFile)
	return nil
}

func runServeForeground(pf pidFile) error {
	cfg := loadConfig()

	dir, err := session.NewDirectory(session.DemoCredentials)
	if err != nil {
		return fmt.Errorf("preparing accounts: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	svc, err := daemon.New(daemon.Config{
		Addr:         flagServeAddr,
		EventsBuffer: flagServeEventsBuffer,
		Directory:    dir,
		Currency:     activeCurrency(cfg, ""),
		StoreOptions: storeOptions(cfg),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if err := pf.write(serverState{
		PID:       os.Getpid(),
		Addr:      flagServeAddr,
		StartedAt: time.Now(),
	}); err != nil {
		return err
	}
	defer pf.remove()

	fmt.Printf("  splitabill API listening on http://%s\n", flagServeAddr)
	fmt.Printf("  Demo login: %s / %s\n", session.DemoCredentials[0].Email, session.DemoCredentials[0].Password)
	fmt.Printf("  Stop with: splitabill serve stop --pid-file %s\n", pf)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	pf := pidFile(flagServePIDFile)
	st, err := pf.read()
	if err != nil {
		fmt.Printf("  Server: not running (pid file not found)\n")
		return nil
	}
	if !processAlive(st.PID) {
		fmt.Printf("  Server: stale pid file (pid %d not alive)\n", st.PID)
		return nil
	}

	addr := st.Addr
	if addr == "" {
		addr = flagServeAddr
	}
	if addr == "" {
		addr = loadConfig().Server.Addr
	}

	fmt.Printf("  Server PID: %d\n", st.PID)
	fmt.Printf("  Address: http://%s\n", addr)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status check
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var status daemon.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Up since: %s (%s)\n", status.StartedAt.Local().Format(time.RFC3339), cli.FormatAgo(status.StartedAt))
	if !status.SessionActive || status.User == nil {
		fmt.Printf("  Session: none\n")
	} else {
		fmt.Printf("  Session: %s <%s>\n", status.User.Name, status.User.Email)
		fmt.Printf("  Deposit: %s %.2f\n", status.Currency, status.Summary.TotalDeposit)
		fmt.Printf("  Allocated: %.1f%%, spent %.1f%%\n", status.Summary.AllocationPercentage, status.Summary.SpendingEfficiency)
		fmt.Printf("  Expenses: %d (%d over budget)\n", status.Summary.ExpenseCount, status.Summary.OverBudgetCount)
	}
	fmt.Printf("  Events: %d, subscribers: %d\n", status.EventCount, status.SubscriberCount)
	return nil
}

func runServeStop(_ *cobra.Command, _ []string) error {
	pf := pidFile(flagServePIDFile)
	st, err := pf.read()
	if err != nil {
		return errors.New("server is not running")
	}

	proc, err := os.FindProcess(st.PID)
	if err != nil {
		return fmt.Errorf("find server process: %w", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("signal server process: %w", err)
	}

	deadline := time.Now().Add(8 * time.Second)
	for time.Now().Before(deadline) {
		if !processAlive(st.PID) {
			pf.remove()
			fmt.Printf("  Stopped server (pid %d)\n", st.PID)
			return nil
		}
		time.Sleep(150 * time.Millisecond)
	}

	return fmt.Errorf("server (pid %d) did not exit in time", st.PID)
}
