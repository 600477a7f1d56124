package controllers

import (
	"net/http"
	"strconv"

	"github.com/azamatleskhan01/fastdelivery/pkg/resp"
	"github.com/azamatleskhan01/fastdelivery/services"
	"github.com/azamatleskhan01/fastdelivery/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc      *services.OrderService
	CartSvc  *services.CartService
	DroneSvc *services.DroneService
}

func NewOrderController(s *services.OrderService, cs *services.CartService, ds *services.DroneService) *OrderController {
	return &OrderController{Svc: s, CartSvc: cs, DroneSvc: ds}
}

// Coordinate fields are pointers: required alone would reject latitude or
// longitude 0, which are in range.
type CheckoutRequest struct {
	DeliveryLatitude  *float64 `json:"delivery_latitude" binding:"required"`
	DeliveryLongitude *float64 `json:"delivery_longitude" binding:"required"`
}

type CreateOrderRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

type StartDroneRequest struct {
	OrderID uint    `json:"order_id" binding:"required"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type CompleteDeliveryRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// GET /checkout — cart summary for the checkout page
func (h *OrderController) CheckoutSummary(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	summary, err := h.CartSvc.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	if len(summary.Lines) == 0 {
		fail(c, services.ErrEmptyCart)
		return
	}
	resp.OK(c, summary)
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.CreateFromCart(uid, *req.DeliveryLatitude, *req.DeliveryLongitude)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /create_order — JSON variant, response shape fixed to {order_id}
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Svc.CreateFromCart(uid, *req.Lat, *req.Lon)
	if err != nil {
		if err == services.ErrEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": order.ID})
}

// POST /start_drone
func (h *OrderController) StartDrone(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req StartDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.DroneSvc.BatteryOK() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drone battery too low"})
		return
	}

	if err := h.Svc.StartDelivery(uid, req.OrderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /complete_delivery
func (h *OrderController) CompleteDelivery(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CompleteDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	if err := h.Svc.CompleteDelivery(uid, req.OrderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id — confirmation detail with line snapshots
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.GetForUser(uid, uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
