// Package testutil provides shared test helpers for setting up snapshot
// slots, archives, and services.
package testutil

import (
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/lomkinju/qienn/internal/archive"
	"github.com/lomkinju/qienn/internal/roulette"
	"github.com/lomkinju/qienn/internal/snapshot"
	"github.com/lomkinju/qienn/internal/tripservice"
)

// TestLogger returns a logger that discards everything.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSlot creates a snapshot store in a temp directory.
func TestSlot(t *testing.T) *snapshot.Store {
	t.Helper()
	slot, err := snapshot.NewStore(filepath.Join(t.TempDir(), "trip.json"))
	if err != nil {
		t.Fatal(err)
	}
	return slot
}

// TestArchive creates a temporary SQLite archive that is cleaned up
// automatically.
func TestArchive(t *testing.T) *archive.DB {
	t.Helper()
	f, err := os.CreateTemp("", "qienn-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := archive.Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestService builds a fully wired service with a temp slot, a temp archive,
// a seeded wheel, and a synchronous settle.
func TestService(t *testing.T, opts ...tripservice.Option) *tripservice.Service {
	t.Helper()
	all := append([]tripservice.Option{
		tripservice.WithArchive(TestArchive(t)),
		tripservice.WithWheelOptions(
			roulette.WithRand(rand.New(rand.NewSource(1))),
			roulette.WithSettleDelay(0),
		),
	}, opts...)
	return tripservice.NewService(TestSlot(t), TestLogger(), all...)
}
