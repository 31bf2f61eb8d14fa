package persist

import (
	"context"
	"time"
)

// Transition operation names.
const (
	OpSet    = "set"
	OpNext   = "next"
	OpSubmit = "submit"
)

// Transition records a single form transition for publication.
type Transition struct {
	FormID    string    `json:"formID" yaml:"formID"`
	Op        string    `json:"op" yaml:"op"`
	Invalid   bool      `json:"invalid" yaml:"invalid"`
	Dirty     bool      `json:"dirty" yaml:"dirty"`
	Touched   bool      `json:"touched" yaml:"touched"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Publisher forwards form transitions to an external observer.
type Publisher interface {
	Publish(ctx context.Context, t Transition) error
	Close() error
}

// ChannelPublisher is a stdlib-only implementation that forwards transitions
// to a Go channel. Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- Transition
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Transition) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, t Transition) error {
	select {
	case p.ch <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
