package views

import "sync"

// Control is an actionable element inside a region, such as a remove
// button. It holds at most one click handler: binding again replaces the
// previous one, so a click always runs a single handler.
type Control struct {
	ID string

	mu      sync.Mutex
	handler func(id string)
}

func NewControl(id string) *Control {
	return &Control{ID: id}
}

func (c *Control) Bind(handler func(id string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

func (c *Control) Bound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler != nil
}

// Click runs the bound handler, if any. It reports whether a handler ran.
func (c *Control) Click() bool {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()

	if handler == nil {
		return false
	}
	handler(c.ID)
	return true
}
