package controllers

import (
	"strconv"

	"github.com/azamatleskhan01/fastdelivery/pkg/resp"
	"github.com/azamatleskhan01/fastdelivery/services"
	"github.com/azamatleskhan01/fastdelivery/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	summary, err := h.Svc.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, summary)
}

// POST /add_to_cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(uid, req.MenuItemID, req.Quantity); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"menuItemId": req.MenuItemID, "quantity": req.Quantity})
}

// POST /update_cart/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQuantity(uid, uint(itemID), req.Quantity); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": itemID, "quantity": req.Quantity})
}

// GET /remove_from_cart/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.Svc.Remove(uid, uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": itemID})
}
