package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"recipe-server/entities"
	"recipe-server/usecases"
)

type RecipeHandler struct {
	useCase *usecases.RecipeUseCase
}

func NewRecipeHandler(useCase *usecases.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{
		useCase: useCase,
	}
}

type TagPayload struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeRequest deliberately has no id or owner field: the id is
// assigned by the store and the owner is the authenticated caller, so
// client-supplied values for either are dropped during binding.
// TimeMinutes and Price are pointers because required means present,
// not nonzero: zero minutes and a zero price are valid values.
type CreateRecipeRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	TimeMinutes *int             `json:"time_minutes" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Link        string           `json:"link"`
	Tags        []TagPayload     `json:"tags" binding:"omitempty,dive"`
}

type UpdateRecipeRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
	Tags        *[]TagPayload    `json:"tags" binding:"omitempty,dive"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeListItem is the list shape; RecipeDetail adds the description.
type RecipeListItem struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Tags        []TagResponse   `json:"tags"`
}

type RecipeDetail struct {
	RecipeListItem
	Description string `json:"description"`
}

func toTagResponses(tags []entities.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return out
}

func toRecipeListItem(recipe *entities.Recipe) RecipeListItem {
	return RecipeListItem{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        toTagResponses(recipe.Tags),
	}
}

func toRecipeDetail(recipe *entities.Recipe) RecipeDetail {
	return RecipeDetail{
		RecipeListItem: toRecipeListItem(recipe),
		Description:    recipe.Description,
	}
}

func toTagInputs(payloads []TagPayload) []usecases.TagInput {
	if payloads == nil {
		return nil
	}
	inputs := make([]usecases.TagInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, usecases.TagInput{Name: p.Name})
	}
	return inputs
}

// recipeID parses the :id path parameter. A malformed id behaves like
// an id that does not exist.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *RecipeHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, usecases.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"title": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process recipe"})
	}
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.useCase.ListRecipes(currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	items := make([]RecipeListItem, 0, len(recipes))
	for i := range recipes {
		items = append(items, toRecipeListItem(&recipes[i]))
	}

	c.JSON(http.StatusOK, items)
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.useCase.GetRecipe(currentUser(c).ID, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeDetail(recipe))
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recipe, err := h.useCase.CreateRecipe(currentUser(c).ID, usecases.RecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
		Tags:        toTagInputs(req.Tags),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRecipeDetail(recipe))
}

// UpdateRecipe handles PATCH /api/v1/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	upd := usecases.RecipeUpdate{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}
	if req.Tags != nil {
		inputs := toTagInputs(*req.Tags)
		upd.Tags = &inputs
	}

	recipe, err := h.useCase.UpdateRecipe(currentUser(c).ID, id, upd)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeDetail(recipe))
}

// ReplaceRecipe handles PUT /api/v1/recipes/:id
func (h *RecipeHandler) ReplaceRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recipe, err := h.useCase.ReplaceRecipe(currentUser(c).ID, id, usecases.RecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
		Tags:        toTagInputs(req.Tags),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeDetail(recipe))
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteRecipe(currentUser(c).ID, id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
