package timeoutat

import (
	"context"
	"testing"
	"time"

	"github.com/value-label/govaluelabel/debug"
)

func TestTimeoutAt(t *testing.T) {
	testTime := 1 * time.Second
	testTimeLimit := 2 * time.Second

	now := time.Now()
	<-TimeoutAt(context.Background(), time.Now().Add(testTime), debug.NoDebug)
	then := time.Now()

	actualTime := then.Sub(now)
	if actualTime < testTime || actualTime >= testTimeLimit {
		t.Fatalf("Should have taken about 1 second but it really took %v!", actualTime)
	}
}

func TestTimeoutAtCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	response := TimeoutAt(ctx, time.Now().Add(time.Hour), debug.NoDebug)
	cancel()
	select {
	case <-response:
	case <-time.After(2 * time.Second):
		t.Fatalf("Cancellation did not release the timeout.")
	}
}
