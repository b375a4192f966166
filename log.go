package valueschema

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger replaces the logger used for debug events (short-circuits, routed errors).
// The default discards everything.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// debugEvent returns a debug event, or nil when debug logging is off. Callers build
// event fields only for a non-nil event.
func debugEvent() *zerolog.Event {
	if e := logger.Load().Debug(); e.Enabled() {
		return e
	}
	return nil
}
