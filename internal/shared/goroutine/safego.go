// Package goroutine launches goroutines whose panics are logged instead of
// crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack and
// reported through the returned channel, which is closed when fn returns.
func SafeGo(log logger.Interface, name string, fn func()) <-chan any {
	panicked := make(chan any, 1)
	go func() {
		defer close(panicked)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				panicked <- r
			}
		}()
		fn()
	}()
	return panicked
}
