// Package hal is the hardware-abstraction glue around the result core:
// a GPIO backend whose operations report domain errors as Errno values,
// and the blink loop that drives it. Only a simulated backend ships;
// the Backend interface is the seam for real boards.
package hal

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/partite-ai/obcgo/result"
)

var log = logging.Logger("hal")

// Backend abstracts GPIO pin operations. Implementations are not
// required to be safe for concurrent use.
type Backend interface {
	// Configure prepares a pin for output.
	Configure(pin int) result.Result[result.Unit, Errno]
	// Write drives a configured pin high or low.
	Write(pin int, high bool) result.Result[result.Unit, Errno]
	// Toggle flips a configured pin and returns the new level.
	Toggle(pin int) result.Result[bool, Errno]
	// Read returns the current level of a configured pin.
	Read(pin int) result.Result[bool, Errno]
}

// SimBackend is an in-memory board with a fixed number of pins.
type SimBackend struct {
	pinCount   int
	configured map[int]bool
	reserved   map[int]bool
	levels     map[int]bool
}

var _ Backend = (*SimBackend)(nil)

func NewSimBackend(pinCount int) *SimBackend {
	return &SimBackend{
		pinCount:   pinCount,
		configured: make(map[int]bool),
		reserved:   make(map[int]bool),
		levels:     make(map[int]bool),
	}
}

// Reserve marks a pin as owned by the board itself. Configuring a
// reserved pin fails with ErrPermissionDenied.
func (b *SimBackend) Reserve(pin int) {
	b.reserved[pin] = true
}

func (b *SimBackend) check(pin int, needConfigured bool) (Errno, bool) {
	if pin < 0 || pin >= b.pinCount {
		return ErrInvalidPin, false
	}
	if needConfigured && !b.configured[pin] {
		return ErrNotConfigured, false
	}
	return 0, true
}

func (b *SimBackend) Configure(pin int) result.Result[result.Unit, Errno] {
	if errno, ok := b.check(pin, false); !ok {
		return result.Err[result.Unit](errno)
	}
	if b.reserved[pin] {
		return result.Err[result.Unit](ErrPermissionDenied)
	}
	b.configured[pin] = true
	b.levels[pin] = false
	log.Debugf("configured pin %d for output", pin)
	return result.Ok[Errno](result.Unit{})
}

func (b *SimBackend) Write(pin int, high bool) result.Result[result.Unit, Errno] {
	if errno, ok := b.check(pin, true); !ok {
		return result.Err[result.Unit](errno)
	}
	b.levels[pin] = high
	log.Debugf("pin %d set %v", pin, high)
	return result.Ok[Errno](result.Unit{})
}

func (b *SimBackend) Toggle(pin int) result.Result[bool, Errno] {
	if errno, ok := b.check(pin, true); !ok {
		return result.Err[bool](errno)
	}
	b.levels[pin] = !b.levels[pin]
	log.Debugf("pin %d toggled to %v", pin, b.levels[pin])
	return result.Ok[Errno](b.levels[pin])
}

func (b *SimBackend) Read(pin int) result.Result[bool, Errno] {
	if errno, ok := b.check(pin, true); !ok {
		return result.Err[bool](errno)
	}
	return result.Ok[Errno](b.levels[pin])
}
