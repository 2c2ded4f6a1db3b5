package utils

import (
	"fmt"
	"runtime/debug"

	"golang-stock-sentiment/pkg/logger"
)

// SafeCall runs fn and converts a panic into an error carrying the stack.
func SafeCall(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered: %v\n%s", r, debug.Stack())
		}
	}()
	fn()
	return nil
}

// GoSafe runs fn in a new goroutine, logging any recovered panic.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		if err := SafeCall(fn); err != nil {
			log.Error("Goroutine panicked", logger.ErrorField(err))
		}
	}()
}
