package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"themepark/ticketing/internal/api/handler/counter"
	"themepark/ticketing/internal/api/middleware"
)

// SetupAPIRoutes mounts the ledger endpoints. The idempotency middleware is
// optional and guards the endpoints that change the ledger.
func (s *Server) SetupAPIRoutes(counterHandler *counter.CounterHandler, idempotency *middleware.IdempotencyMiddleware) {
	r := s.engine

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	mutating := []gin.HandlerFunc{}
	if idempotency != nil {
		mutating = append(mutating, idempotency.Handle)
	}

	v1 := r.Group("v1")
	{
		v1.POST("/customers", append(mutating, counterHandler.Register)...)
		v1.GET("/customers/:id", counterHandler.GetCustomer)
		v1.POST("/payments/cycles", append(mutating, counterHandler.ProcessCycle)...)
		v1.GET("/receipts/next", counterHandler.NextReceipts)
		v1.GET("/counters/:counter/receipts", counterHandler.PeekReceipts)
		v1.GET("/snapshot", counterHandler.Snapshot)
		v1.GET("/history", counterHandler.History)
	}
}
