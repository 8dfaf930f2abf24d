package shell

import "sync"

// Message kinds exchanged between an embedded storefront preview and its
// host editor frame.
const (
	MsgClosePreview             = "CLOSE_PREVIEW"
	MsgNavigateToCustomerOrders = "NAVIGATE_TO_CUSTOMER_ORDERS"
)

// Message is one preview-to-host signal. Best effort and fire-and-forget:
// no acknowledgement, no retry, a lost message just fails to trigger the
// host-side navigation.
type Message struct {
	Type string `json:"type"`
}

// HostChannel abstracts the cross-frame transport so the shell never holds
// a real window or socket. Production wires a websocket bridge; tests use
// the in-process Emitter.
type HostChannel interface {
	Send(msg Message) error
	OnMessage(handler func(Message))
}

// Emitter is the in-process HostChannel used by tests and by same-process
// preview embedding.
type Emitter struct {
	mu       sync.Mutex
	handlers []func(Message)
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Send(msg Message) error {
	e.mu.Lock()
	handlers := make([]func(Message), len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.Unlock()
	for _, h := range handlers {
		h(msg)
	}
	return nil
}

func (e *Emitter) OnMessage(handler func(Message)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}
