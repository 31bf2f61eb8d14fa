// Tests for ChannelPublisher delivery and backpressure behavior.
package persist

import (
	"context"
	"testing"
	"time"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan Transition, 10)
	p := NewChannelPublisher(ch)

	sent := Transition{
		FormID:    "signup",
		Op:        OpSubmit,
		Invalid:   true,
		Dirty:     true,
		Timestamp: time.Now(),
	}

	if err := p.Publish(context.Background(), sent); err != nil {
		t.Errorf("Publish failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.FormID != sent.FormID {
			t.Errorf("FormID mismatch: got %q, want %q", got.FormID, sent.FormID)
		}
		if got.Op != sent.Op {
			t.Errorf("Op mismatch: got %q, want %q", got.Op, sent.Op)
		}
		if !got.Invalid || !got.Dirty {
			t.Error("flag payload lost in delivery")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No transition delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan Transition, 1)
	p := NewChannelPublisher(ch)
	ch <- Transition{} // Fill buffer

	err := p.Publish(context.Background(), Transition{FormID: "drop-test", Op: OpSet})
	if err != nil {
		t.Errorf("Publish on full channel failed: %v", err)
	}
	// Should drop silently
}

func TestChannelPublisher_Close(t *testing.T) {
	ch := make(chan Transition)
	p := NewChannelPublisher(ch)

	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	if _, open := <-ch; open {
		t.Error("channel should be closed")
	}
}
