package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutor-catalog/internal/apperror"
)

func setEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "test")
	t.Setenv("ADDR", "127.0.0.1:0")
	t.Setenv("TEACHERS_PATH", filepath.Join("..", "data", "teachers.json"))
	t.Setenv("GOALS_PATH", filepath.Join("..", "data", "goals.json"))
	t.Setenv("REQUESTS_PATH", filepath.Join(dir, "request.json"))
	t.Setenv("BOOKINGS_PATH", filepath.Join(dir, "booking.json"))
	return dir
}

func TestRun_StartsAndShutsDown(t *testing.T) {
	dir := setEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := Run(ctx)
	assert.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "request.json"))
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestRun_MissingCatalog(t *testing.T) {
	setEnv(t)
	t.Setenv("TEACHERS_PATH", filepath.Join(t.TempDir(), "missing.json"))

	err := Run(context.Background())
	assert.True(t, errors.Is(err, apperror.ErrStartup), "got %v", err)
}

func TestMain_GracefulExit(t *testing.T) {
	setEnv(t)

	go func() {
		main()
	}()

	// Give time for main to start
	time.Sleep(500 * time.Millisecond)

	// Send SIGINT to simulate Ctrl+C
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("unable to find process: %v", err)
	}
	_ = p.Signal(syscall.SIGINT)

	// Wait for graceful shutdown
	time.Sleep(1 * time.Second)
}
