package background

import (
	"context"
	"log"
	"sync"

	"github.com/zllovesuki/MacroPad/controller"
)

// Notifier drains the controller's press notifications into the log and keeps a tally per outcome
type Notifier struct {
	C chan controller.Notification

	mu     sync.Mutex
	counts map[controller.Event]int
}

func NewNotifier() *Notifier {
	return &Notifier{
		C:      make(chan controller.Notification, 10),
		counts: make(map[controller.Event]int),
	}
}

func (n *Notifier) String() string {
	return "Notifier"
}

// Count returns how many notifications of evt have been seen
func (n *Notifier) Count(evt controller.Event) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counts[evt]
}

func (n *Notifier) Serve(haltCtx context.Context) error {
	log.Println("[notifier] starting notify loop")
	for {
		select {
		case msg := <-n.C:
			n.mu.Lock()
			n.counts[msg.Event]++
			n.mu.Unlock()
			log.Printf("[notifier] %s\n", msg)
		case <-haltCtx.Done():
			log.Println("[notifier] exiting notify loop")
			return nil
		}
	}
}
