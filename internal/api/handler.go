// Package api exposes the recipe extraction over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rezeptplaner/internal/extract"
	"rezeptplaner/internal/recipe"
)

// RecipeExtractor defines the interface for turning a dish name into a
// structured recipe.
type RecipeExtractor interface {
	Extract(ctx context.Context, dish string) (*recipe.Recipe, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Extractor      RecipeExtractor
	ExtractTimeout time.Duration
}

// NewHandler creates a new Handler.
func NewHandler(extractor RecipeExtractor, extractTimeout time.Duration) *Handler {
	return &Handler{Extractor: extractor, ExtractTimeout: extractTimeout}
}

// createRecipeRequest is the submission boundary: one free-text field.
type createRecipeRequest struct {
	Dish string `json:"dish"`
}

// recipeResponse is the presentation-ready data contract: the recipe
// itself plus the derived shopping list and step sequence. Any
// front-end technology can subscribe to this shape.
type recipeResponse struct {
	Recipe          *recipe.Recipe      `json:"recipe"`
	ShoppingList    recipe.ShoppingList `json:"shopping_list"`
	Steps           []string            `json:"steps"`
	DifficultyLevel string              `json:"difficulty_level"`
}

// CreateRecipe handles a dish-name submission and responds with the
// structured recipe, shopping list and preparation steps.
func (h *Handler) CreateRecipe(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  "INVALID_INPUT",
			"error": "Request body must be JSON with a \"dish\" field.",
		})
		return
	}

	dish := strings.TrimSpace(req.Dish)
	if dish == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  "INVALID_INPUT",
			"error": "Please enter a dish name first.",
		})
		return
	}

	// The generative call may block for tens of seconds. A client that
	// gives up (or supersedes this submission) cancels via the request
	// context, so no stale result is ever rendered.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.ExtractTimeout)
	defer cancel()

	rec, err := h.Extractor.Extract(ctx, dish)
	if err != nil {
		h.respondExtractionError(c, dish, err)
		return
	}

	c.JSON(http.StatusOK, recipeResponse{
		Recipe:          rec,
		ShoppingList:    recipe.BuildShoppingList(rec.Ingredients),
		Steps:           recipe.NormalizeSteps(rec.PreparationText),
		DifficultyLevel: recipe.NormalizeDifficulty(rec.Difficulty),
	})
}

// respondExtractionError maps the typed failure onto a status code and
// a human-readable message. Schema violations get different wording
// than backend failures so the user knows whether rephrasing can help.
// No failure is retried here; the user may resubmit immediately.
func (h *Handler) respondExtractionError(c *gin.Context, dish string, err error) {
	var backendErr *extract.BackendError
	var violation *recipe.SchemaViolation

	switch {
	case errors.As(err, &backendErr):
		zap.L().Error("recipe extraction backend failed",
			zap.String("dish", dish),
			zap.Error(backendErr.Err),
		)
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{
			"code":  "BACKEND_ERROR",
			"error": "The recipe service is currently unavailable. Please try again in a moment.",
		})
	case errors.As(err, &violation):
		zap.L().Warn("recipe extraction returned off-schema output",
			zap.String("dish", dish),
			zap.String("field", violation.Field),
			zap.String("constraint", violation.Constraint),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":   "SCHEMA_VIOLATION",
			"error":  "The generated recipe was incomplete. Try rephrasing the dish name.",
			"detail": violation.Error(),
		})
	default:
		zap.L().Error("recipe extraction failed",
			zap.String("dish", dish),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  "INTERNAL_ERROR",
			"error": "Recipe extraction failed.",
		})
	}
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
