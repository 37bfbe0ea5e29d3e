package counter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/pkg/paginator"
)

// Snapshot godoc
// @Summary      Ledger snapshot
// @Tags         Counters
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /v1/snapshot [get]
func (h *CounterHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    h.ticketingService.Snapshot(),
	})
}

// History godoc
// @Summary      Paid history
// @Description  Settled payments, newest first
// @Tags         Payments
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "payments with pagination metadata"
// @Failure      503 {object} map[string]interface{} "No database configured"
// @Router       /v1/history [get]
func (h *CounterHandler) History(c *gin.Context) {
	if h.paymentHistory == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    http.StatusServiceUnavailable,
			"message": constant.ErrDatabaseDisabled.Error(),
		})
		return
	}

	pagination := paginator.New(c)

	all, count, err := h.paymentHistory.ListPayments(c, pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    all,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     count,
		},
	})
}
