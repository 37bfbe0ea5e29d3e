package counter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"themepark/ticketing/internal/api/request"
	"themepark/ticketing/internal/constant"
)

// Register godoc
// @Summary      Register customer
// @Description  Queue a customer at the counter picked for the order size
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        request body request.RegisterCustomerRequest true "customer"
// @Param        Idempotency-Key header string false "replays the first response"
// @Success      201 {object} map[string]interface{} "registered customer"
// @Failure      400 {object} map[string]string "Invalid request body"
// @Router       /v1/customers [post]
func (h *CounterHandler) Register(c *gin.Context) {
	var req request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": constant.ErrInvalidName.Error()})
		return
	}

	customer, err := h.ticketingService.Register(c, req.Name, req.Tickets)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"data":    customer,
	})
}

// GetCustomer godoc
// @Summary      Find customer
// @Tags         Customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Customer not found"
// @Router       /v1/customers/{id} [get]
func (h *CounterHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constant.ErrCustomerNotFound.Error()})
		return
	}

	customer, err := h.ticketingService.FindCustomer(id)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    customer,
	})
}
