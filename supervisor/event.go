package supervisor

import (
	"log"
	"sync"

	"github.com/thejerf/suture/v4"
)

// EventHook logs supervisor events and counts service crashes by service name
type EventHook struct {
	mu      sync.Mutex
	crashes map[string]int
}

func NewEventHook() *EventHook {
	return &EventHook{
		crashes: make(map[string]int),
	}
}

// Event satisfies suture.EventHook
func (e *EventHook) Event(evt suture.Event) {
	log.Printf("[supervisor] event: %+v\n", evt)
	defer func() {
		if err := recover(); err != nil {
			log.Printf("[supervisor] event hook panic: %+v\n", err)
		}
	}()
	m := evt.Map()
	switch evt.Type() {
	case suture.EventTypeServiceTerminate, suture.EventTypeServicePanic:
		name, _ := m["service_name"].(string)
		e.mu.Lock()
		e.crashes[name]++
		count := e.crashes[name]
		e.mu.Unlock()
		log.Printf("[supervisor] %s crashed unexpectedly (%d so far), restarting...\n", name, count)
	}
}

// Crashes returns how many times the named service terminated or panicked
func (e *EventHook) Crashes(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.crashes[name]
}
