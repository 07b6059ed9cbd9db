package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/happythoughts/thoughts-api/internal/api/metrics"
	"github.com/happythoughts/thoughts-api/internal/api/middleware"
	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
	"github.com/happythoughts/thoughts-api/pkg/logger"
)

// ThoughtHandler handles HTTP requests for thought operations.
type ThoughtHandler struct {
	service ports.ThoughtService
}

func NewThoughtHandler(service ports.ThoughtService) *ThoughtHandler {
	return &ThoughtHandler{service: service}
}

// List handles GET /messages with optional liked/search query parameters.
//
// @Summary      List thoughts
// @Tags         thoughts
// @Produce      json
// @Param        liked   query     string  false  "true = only thoughts with hearts > 0"
// @Param        search  query     string  false  "case-insensitive substring of the message"
// @Success      200     {array}   thoughtResponse
// @Failure      500     {object}  map[string]any
// @Router       /messages [get]
func (h *ThoughtHandler) List(c echo.Context) error {
	thoughts, err := h.service.List(c.Request().Context(), ports.ListThoughtsInput{
		Liked:  c.QueryParam("liked") == "true",
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toThoughtResponses(thoughts))
}

// Get handles GET /messages/:id.
//
// @Summary      Get a single thought
// @Tags         thoughts
// @Produce      json
// @Param        id   path      string  true  "Thought id"
// @Success      200  {object}  thoughtResponse
// @Failure      404  {object}  map[string]any
// @Router       /messages/{id} [get]
func (h *ThoughtHandler) Get(c echo.Context) error {
	thought, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toThoughtResponse(thought))
}

// Create handles POST /messages. The route is behind the auth gate, so a
// user is always attached; the thought itself carries no owner reference.
//
// @Summary      Post a new thought
// @Tags         thoughts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createThoughtRequest  true  "Thought text"
// @Success      201   {object}  thoughtResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /messages [post]
func (h *ThoughtHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		// The route is registered behind the auth gate; reaching this
		// without a user means a wiring mistake, not a client error.
		return domain.ErrUnauthenticated
	}

	var req createThoughtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thought, err := h.service.Create(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	metrics.ThoughtsCreatedTotal.Inc()
	log := logger.Get()
	log.Info().
		Str("thought_id", thought.ID).
		Str("user_id", user.ID).
		Msg("thought posted")

	return c.JSON(http.StatusCreated, toThoughtResponse(thought))
}

// Like handles POST /messages/:id/like.
//
// @Summary      Like a thought
// @Tags         thoughts
// @Produce      json
// @Param        id   path      string  true  "Thought id"
// @Success      200  {object}  thoughtResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /messages/{id}/like [post]
func (h *ThoughtHandler) Like(c echo.Context) error {
	thought, err := h.service.Like(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.LikesTotal.Inc()
	return c.JSON(http.StatusOK, toThoughtResponse(thought))
}
