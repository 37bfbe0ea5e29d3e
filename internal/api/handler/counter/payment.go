package counter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"themepark/ticketing/internal/api/request"
	"themepark/ticketing/internal/provider"
)

// ProcessCycle godoc
// @Summary      Run a payment cycle
// @Description  Walk the counters in rotation and settle up to the quota using the scripted tenders
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body request.ProcessCycleRequest true "tenders per customer id"
// @Success      200 {object} map[string]interface{} "cycle result"
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      500 {object} map[string]interface{} "cycle interrupted"
// @Router       /v1/payments/cycles [post]
func (h *CounterHandler) ProcessCycle(c *gin.Context) {
	var req request.ProcessCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := req.Script()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responder := provider.NewScriptedResponder(script, provider.Fallback(req.Fallback))
	result, err := h.ticketingService.ProcessPayments(c, responder)
	if err != nil {
		c.JSON(statusOf(err), gin.H{
			"error": err.Error(),
			"data":  result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    result,
	})
}
