package handlers

import (
	"net/http"

	"dcreative-storefront/internal/middleware"
	"dcreative-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// CartHandler is the platform binding layer for cart actions: it maps HTTP
// requests onto the closed action-tag set and returns the dispatch outcome.
type CartHandler struct {
	actions ActionServiceInterface
}

func NewCartHandler(actions ActionServiceInterface) *CartHandler {
	return &CartHandler{actions: actions}
}

// RegisterRoutes registers the routes for cart interactions
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, session *middleware.SessionMiddleware) {
	cart := router.Group("/cart", session.Session())
	{
		// Badge value, modal position and current view
		cart.GET("", h.GetState)
		// Add a product to the cart
		cart.POST("/items", h.AddToCart)
		// Adjust a line item's quantity
		cart.POST("/items/:product_id/increment", h.Increment)
		cart.POST("/items/:product_id/decrement", h.Decrement)
		// Remove a line item
		cart.DELETE("/items/:product_id", h.Remove)
		// Clear the whole cart
		cart.DELETE("", h.Clear)
		// Open / close the cart modal
		cart.POST("/open", h.Open)
		cart.POST("/close", h.Close)
		// Checkout the full cart
		cart.POST("/checkout", h.Checkout)
		// Buy-now snapshot flow
		cart.POST("/buy-now", h.BuyNow)
		cart.POST("/confirm", h.ConfirmPurchase)
		cart.POST("/continue", h.ContinueShopping)
	}
}

// ProductFactsRequest carries the fact tuple the frontend reads off the
// product card. An empty tuple with a product_id falls back to the catalog.
type ProductFactsRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
}

func (r ProductFactsRequest) action(tag services.ActionTag) services.Action {
	action := services.Action{Tag: tag, ProductID: r.ProductID}
	if r.Name != "" || r.Price != "" || r.Image != "" {
		action.Facts = &services.ProductFacts{
			ID:    r.ProductID,
			Name:  r.Name,
			Price: r.Price,
			Image: r.Image,
		}
		action.ProductID = ""
	}
	return action
}

// GetState godoc
// @Summary Current cart state
// @Description Badge value, modal position and rendered view for the session
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Failure 500 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetState(c *gin.Context) {
	outcome, err := h.actions.State(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to read cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// AddToCart godoc
// @Summary Add product to cart
// @Description Merge the submitted product into the session's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param product body ProductFactsRequest true "Product facts"
// @Success 200 {object} services.Outcome
// @Failure 400 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req ProductFactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	h.dispatch(c, req.action(services.ActionAddToCart))
}

// Increment godoc
// @Summary Increase line item quantity
// @Tags cart
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.Outcome
// @Router /cart/items/{product_id}/increment [post]
func (h *CartHandler) Increment(c *gin.Context) {
	h.dispatch(c, services.Action{
		Tag:       services.ActionIncrement,
		ProductID: c.Param("product_id"),
	})
}

// Decrement godoc
// @Summary Decrease line item quantity
// @Description Quantity never drops below 1; removal is explicit
// @Tags cart
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.Outcome
// @Router /cart/items/{product_id}/decrement [post]
func (h *CartHandler) Decrement(c *gin.Context) {
	h.dispatch(c, services.Action{
		Tag:       services.ActionDecrement,
		ProductID: c.Param("product_id"),
	})
}

// Remove godoc
// @Summary Remove line item from cart
// @Tags cart
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.Outcome
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	h.dispatch(c, services.Action{
		Tag:       services.ActionRemove,
		ProductID: c.Param("product_id"),
	})
}

// Clear godoc
// @Summary Clear the cart
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionClearCart})
}

// Open godoc
// @Summary Open the cart modal
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart/open [post]
func (h *CartHandler) Open(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionOpenCart})
}

// Close godoc
// @Summary Close the cart modal
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart/close [post]
func (h *CartHandler) Close(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionCloseCart})
}

// Checkout godoc
// @Summary Checkout the full cart
// @Description Simulated checkout; an empty cart only raises an info toast
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionCheckout})
}

// BuyNow godoc
// @Summary Buy a single product now
// @Description Writes a one-item checkout snapshot; the main cart is untouched
// @Tags cart
// @Accept json
// @Produce json
// @Param product body ProductFactsRequest true "Product facts"
// @Success 200 {object} services.Outcome
// @Failure 400 {object} ErrorResponse
// @Router /cart/buy-now [post]
func (h *CartHandler) BuyNow(c *gin.Context) {
	var req ProductFactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	h.dispatch(c, req.action(services.ActionBuyNow))
}

// ConfirmPurchase godoc
// @Summary Confirm the buy-now purchase
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart/confirm [post]
func (h *CartHandler) ConfirmPurchase(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionConfirmPurchase})
}

// ContinueShopping godoc
// @Summary Close the buy-now modal and keep shopping
// @Tags cart
// @Produce json
// @Success 200 {object} services.Outcome
// @Router /cart/continue [post]
func (h *CartHandler) ContinueShopping(c *gin.Context) {
	h.dispatch(c, services.Action{Tag: services.ActionContinueShopping})
}

func (h *CartHandler) dispatch(c *gin.Context, action services.Action) {
	outcome, err := h.actions.Dispatch(c.Request.Context(), middleware.GetSessionID(c), action)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to apply cart action",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// ErrorResponse is the error body shared by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
