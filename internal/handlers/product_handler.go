package handlers

import (
	"net/http"

	"dcreative-storefront/internal/middleware"
	"dcreative-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products ProductServiceInterface
	actions  ActionServiceInterface
}

func NewProductHandler(products ProductServiceInterface, actions ActionServiceInterface) *ProductHandler {
	return &ProductHandler{
		products: products,
		actions:  actions,
	}
}

// RegisterRoutes registers the routes for the product grid and the detail
// overlay
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, session *middleware.SessionMiddleware) {
	products := router.Group("/products", session.Session())
	{
		// Product grid
		products.GET("", h.List)
		// Product facts by slug
		products.GET("/:product_id", h.Get)
		// Open the detail overlay
		products.POST("/:product_id/detail", h.OpenDetail)
	}

	detail := router.Group("/detail", session.Session())
	{
		// Close the detail overlay (animated)
		detail.POST("/close", h.CloseDetail)
	}
}

// List godoc
// @Summary List catalog products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Product facts by slug
// @Tags products
// @Produce json
// @Param product_id path string true "Product slug"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetBySlug(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// OpenDetail godoc
// @Summary Open the product detail overlay
// @Description Fills the overlay's content slots and opens the modal host
// @Tags products
// @Produce json
// @Param product_id path string true "Product slug"
// @Success 200 {object} services.Outcome
// @Router /products/{product_id}/detail [post]
func (h *ProductHandler) OpenDetail(c *gin.Context) {
	outcome, err := h.actions.Dispatch(c.Request.Context(), middleware.GetSessionID(c), services.Action{
		Tag:       services.ActionOpenDetail,
		ProductID: c.Param("product_id"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to open product detail",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// CloseDetail godoc
// @Summary Close the product detail overlay
// @Description Visual state flips immediately; the hide is deferred
// @Tags products
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /detail/close [post]
func (h *ProductHandler) CloseDetail(c *gin.Context) {
	outcome, err := h.actions.Dispatch(c.Request.Context(), middleware.GetSessionID(c), services.Action{
		Tag: services.ActionCloseDetail,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to close product detail",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, outcome)
}
