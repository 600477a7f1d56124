package controllers

import (
	"strconv"

	"github.com/azamatleskhan01/fastdelivery/pkg/resp"
	"github.com/azamatleskhan01/fastdelivery/repository"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Repo *repository.RestaurantRepository }

func NewRestaurantController(r *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Repo.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:id — restaurant plus its menu
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := h.Repo.GetWithMenu(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "menuItems": rest.MenuItems})
}
