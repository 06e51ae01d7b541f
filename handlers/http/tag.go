package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-server/usecases"
)

type TagHandler struct {
	useCase *usecases.RecipeUseCase
}

func NewTagHandler(useCase *usecases.RecipeUseCase) *TagHandler {
	return &TagHandler{useCase: useCase}
}

// ListTags handles GET /api/v1/tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.useCase.ListTags(currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	c.JSON(http.StatusOK, toTagResponses(tags))
}
