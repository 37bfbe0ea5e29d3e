package counter

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

// NextReceipts godoc
// @Summary      Next receipt batch
// @Description  List the receipts of the counter the receipt rotation points at
// @Tags         Receipts
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "Nothing to show"
// @Router       /v1/receipts/next [get]
func (h *CounterHandler) NextReceipts(c *gin.Context) {
	batch, err := h.ticketingService.NextReceipts(c)
	if err != nil {
		c.JSON(statusOf(err), gin.H{
			"error":   err.Error(),
			"counter": batch.Counter,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    batch,
	})
}

// PeekReceipts godoc
// @Summary      Peek at a counter's receipts
// @Tags         Receipts
// @Produce      json
// @Param        counter path int true "Counter (1-3)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Unknown counter"
// @Router       /v1/counters/{counter}/receipts [get]
func (h *CounterHandler) PeekReceipts(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("counter"))
	if err != nil || !domain.Counter(n).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": constant.ErrCounterNotFound.Error()})
		return
	}

	batch, err := h.ticketingService.PeekReceipts(domain.Counter(n))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    batch,
	})
}
