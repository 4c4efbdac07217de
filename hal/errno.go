package hal

// Errno is the domain error reported by GPIO operations. It is a plain
// value, carried on the err side of a Result rather than through the
// error interface.
type Errno uint8

const (
	// ErrInvalidPin means the pin number is outside the board's range.
	ErrInvalidPin Errno = iota + 1
	// ErrNotConfigured means the pin exists but was never configured
	// for output.
	ErrNotConfigured
	// ErrPermissionDenied means the pin is reserved by the board and
	// cannot be driven.
	ErrPermissionDenied
)

func (e Errno) String() string {
	switch e {
	case ErrInvalidPin:
		return "invalid pin"
	case ErrNotConfigured:
		return "pin not configured"
	case ErrPermissionDenied:
		return "permission denied"
	default:
		return "unknown error"
	}
}
