package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// spinner provides a simple progress indicator for the blocking render step,
// with context cancellation support.
type spinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
}

// newSpinner creates a spinner that stops when the context is cancelled.
func newSpinner(ctx context.Context, message string) *spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				s.clearLine()
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), styleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the spinner line.
func (s *spinner) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.cancel()
	<-s.stopped
}

// clearLine erases the spinner output so subsequent logs start clean.
func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
