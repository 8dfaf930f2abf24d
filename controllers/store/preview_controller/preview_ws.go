package preview_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vendora-commerce/vendora-storefront-backend/shell"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsChannel adapts one websocket connection to shell.HostChannel. The
// builder's editor frame connects here while a storefront preview is open;
// preview-side signals (close preview, jump to orders) travel through it.
type wsChannel struct {
	mu       sync.Mutex
	conn     *websocket.Conn
	handlers []func(shell.Message)
}

func (w *wsChannel) Send(msg shell.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(msg)
}

func (w *wsChannel) OnMessage(handler func(shell.Message)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

func (w *wsChannel) dispatch(msg shell.Message) {
	w.mu.Lock()
	handlers := make([]func(shell.Message), len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()
	for _, h := range handlers {
		h(msg)
	}
}

// PreviewSocket upgrades the connection and pumps preview messages until the
// peer goes away. Unknown message types are dropped.
func PreviewSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	channel := &wsChannel{conn: conn}
	channel.OnMessage(func(msg shell.Message) {
		// Echo host-bound signals back so the editor frame can react;
		// the storefront side treats delivery as best effort.
		if err := channel.Send(msg); err != nil {
			log.Printf("[preview] failed to relay %s: %v", msg.Type, err)
		}
	})

	for {
		var msg shell.Message
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Type {
		case shell.MsgClosePreview, shell.MsgNavigateToCustomerOrders:
			channel.dispatch(msg)
		}
	}
}
