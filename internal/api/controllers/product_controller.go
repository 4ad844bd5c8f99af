package controllers

import (
	"github.com/gin-gonic/gin"

	"menupay/internal/services"
	"menupay/pkg/utils"
)

type ProductController struct {
	productService services.ProductService
}

func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (p *ProductController) List(c *gin.Context) {
	products, err := p.productService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "")
}
