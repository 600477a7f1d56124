package controllers

import (
	"strconv"

	"github.com/azamatleskhan01/fastdelivery/pkg/resp"
	"github.com/azamatleskhan01/fastdelivery/services"
	"github.com/azamatleskhan01/fastdelivery/utils"

	"github.com/gin-gonic/gin"
)

type MarketController struct{ Svc *services.MarketService }

func NewMarketController(s *services.MarketService) *MarketController {
	return &MarketController{Svc: s}
}

type AddProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
}

// GET /market
func (h *MarketController) List(c *gin.Context) {
	products, err := h.Svc.ListAvailable(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /add_product
func (h *MarketController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), uid, req.Name, req.Price, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

// GET /delete_product/:id — admin only
func (h *MarketController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), utils.CurrentRole(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /buy/:id
func (h *MarketController) Buy(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Purchase(c.Request.Context(), uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"purchased": id})
}
