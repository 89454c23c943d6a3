package handlers

import (
	"net/http"
	"strconv"

	"food-vendor-api/middleware"
	"food-vendor-api/models"
	"food-vendor-api/services"
	"food-vendor-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetOrders returns all orders for the authenticated vendor
func GetOrders(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	orders, err := Lifecycle.ListOrders(c.Request.Context(), vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Dashboard summary: counts grouped by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderDetail returns one order with its line items resolved
func GetOrderDetail(c *gin.Context) {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := Lifecycle.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type ProcessOrderRequest struct {
	Status  models.OrderStatus `json:"status" binding:"required"`
	Remarks string             `json:"remarks"`
	Time    int                `json:"time"` // optional ready-time override in minutes
}

// ProcessOrder applies a fulfillment status transition to an order
func ProcessOrder(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req ProcessOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := Lifecycle.ApplyStatus(c.Request.Context(), services.StatusUpdateCommand{
		OrderID:   orderID,
		Status:    req.Status,
		Remarks:   req.Remarks,
		ReadyTime: req.Time,
		Actor:     "vendor",
		ActorID:   vendorID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Order status updated",
		"order":             order,
		"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
	})
}

// GetStateMachineInfo returns the fulfillment state machine for documentation
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusReady, models.StatusRejected, models.StatusFailed},
		"description":     "Vendor Order Fulfillment State Machine",
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
