package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

type MenuController struct {
	Catalog models.Catalog
}

func NewMenuController(catalog models.Catalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetMenu -> the categorized catalog driving the order form
func (mc *MenuController) GetMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu catalog", mc.Catalog)
}
