package security_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/security"
)

func newTestGuard() (*security.BruteForceGuard, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return security.NewBruteForceGuard(ctx, log), cancel
}

func TestBruteForce_SuccessfulLoginResetsCount(t *testing.T) {
	guard, cancel := newTestGuard()
	defer cancel()

	guard.RecordFailure("alice")
	guard.RecordFailure("alice")
	guard.Reset("alice")

	if guard.IsBlocked("alice") {
		t.Fatal("username should not be blocked after reset")
	}
}

func TestBruteForce_FailureIncrementsAndBlocks(t *testing.T) {
	guard, cancel := newTestGuard()
	defer cancel()

	for range 5 {
		guard.RecordFailure("mallory")
	}

	if !guard.IsBlocked("mallory") {
		t.Fatal("username should be blocked after max failures")
	}
}

func TestBruteForce_NotBlockedBeforeMax(t *testing.T) {
	guard, cancel := newTestGuard()
	defer cancel()

	for range 4 {
		guard.RecordFailure("bob")
	}

	if guard.IsBlocked("bob") {
		t.Fatal("username should not be blocked before max failures")
	}
}

func TestBruteForce_IndependentUsernames(t *testing.T) {
	guard, cancel := newTestGuard()
	defer cancel()

	for range 5 {
		guard.RecordFailure("mallory")
	}

	if guard.IsBlocked("alice") {
		t.Fatal("lockout must be scoped to the failing username")
	}
}
