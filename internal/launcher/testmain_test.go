package launcher_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine leaks after the launcher tests complete.
// The launch sequence is strictly single-threaded, so anything left
// running is a bug.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
