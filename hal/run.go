package hal

import (
	"context"
	"time"
)

// Handles carries everything the blink loop needs from the board.
type Handles struct {
	Backend Backend
	LEDPin  int
	Period  time.Duration
	// Count limits the number of toggles; zero means run until the
	// context is done.
	Count int
}

// Run configures the LED pin and toggles it every period until the
// context is done or Count toggles have happened. A board that cannot
// configure its own LED pin is misassembled, so that failure aborts
// rather than returning.
func Run(ctx context.Context, h Handles) error {
	h.Backend.Configure(h.LEDPin).Expect("LED pin must be configurable")

	ticker := time.NewTicker(h.Period)
	defer ticker.Stop()

	toggles := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			level := h.Backend.Toggle(h.LEDPin).Unwrap()
			log.Debugf("led pin %d now %v", h.LEDPin, level)
			toggles++
			if h.Count > 0 && toggles >= h.Count {
				return nil
			}
		}
	}
}
