package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-server/usecases"
)

type TokenHandler struct {
	useCase *usecases.TokenUseCase
}

func NewTokenHandler(useCase *usecases.TokenUseCase) *TokenHandler {
	return &TokenHandler{useCase: useCase}
}

type CreateTokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateTokenResponse struct {
	Token string `json:"token"`
}

// CreateToken handles POST /api/v1/users/token. Bad credentials come
// back as a single message; the response never says whether the email
// or the password was the wrong half.
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.useCase.IssueToken(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, CreateTokenResponse{Token: token})
}
