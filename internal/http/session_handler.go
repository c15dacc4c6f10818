package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/domain/dto"
	"github.com/floramar/flower-service/internal/service"
)

// SessionHandler opens cart sessions.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// OpenSession handles POST /api/sessions requests.
//
// @Summary      Open a cart session
// @Description  Returns a fresh cart ID and a signed token bound to it
// @Tags         Session
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "New session"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *SessionHandler) OpenSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID, token, err := h.sessions.Open()
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to open session", err)
		return
	}

	builder.SuccessCreated(dto.SessionResponse{
		CartID: cartID,
		Token:  token,
	})
}
