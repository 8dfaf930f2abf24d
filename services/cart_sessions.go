package services

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/cart"
)

// CartSessions is the process-wide registry of shopper carts, keyed by the
// X-Session-ID header the storefront client generates on first visit.
var CartSessions = cart.NewSessions(2 * time.Hour)

// SessionID returns the caller's cart session id, minting one when the
// header is absent so the response can hand it back to the client.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Header("X-Session-ID", id)
	return id
}

// StartCartSweeper expires idle carts in the background.
func StartCartSweeper(interval time.Duration) {
	go func() {
		for range time.Tick(interval) {
			if n := CartSessions.Sweep(); n > 0 {
				log.Printf("[cart] swept %d idle sessions", n)
			}
		}
	}()
}
