package handlers

import (
	"net/http"

	"dcreative-storefront/internal/middleware"
	"dcreative-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact ContactServiceInterface
}

func NewContactHandler(contact ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// RegisterRoutes registers the contact form route
func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup, session *middleware.SessionMiddleware) {
	contact := router.Group("/contact", session.Session())
	{
		contact.POST("", h.Submit)
	}
}

// ContactResponse reports whether the form should reset.
type ContactResponse struct {
	ResetForm bool `json:"reset_form"`
}

// Submit godoc
// @Summary Submit the contact form
// @Description Validates required fields and email shape; submission is simulated
// @Tags contact
// @Accept json
// @Produce json
// @Param message body services.ContactMessage true "Contact message"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg services.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	reset, err := h.contact.Submit(middleware.GetSessionID(c), msg)
	if err != nil {
		// Validation failure already raised its error toast; the form
		// keeps its values.
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ContactResponse{ResetForm: reset})
}
