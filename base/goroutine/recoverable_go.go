// Package goroutine spawns background work that must not take the
// process down with it.
package goroutine

import (
	"runtime/debug"

	"github.com/auton-labs/goapi/base/log"
)

// PanicEvent carries what a recovered goroutine panicked with.
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// RecoverableGo runs f on its own goroutine, logging a panic instead
// of crashing. The returned channel yields the panic event if one
// happened and closes either way, fire and forget callers can drop it.
func RecoverableGo(f func()) chan *PanicEvent {
	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				stack := debug.Stack()
				log.Log().WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("recovered panicked goroutine")
				panicChan <- &PanicEvent{p, stack}
			}
			close(panicChan)
		}()

		f()
	}()

	return panicChan
}
