package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves GET / — a self-describing listing of the API.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

type endpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type apiInfo struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Endpoints []endpointInfo `json:"endpoints"`
}

func (h *HomeHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, apiInfo{
		Name:    "Happy Thoughts API",
		Version: "1.0",
		Endpoints: []endpointInfo{
			{Method: "GET", Path: "/", Description: "API documentation (this page)"},
			{Method: "POST", Path: "/signup", Description: "Create an account, returns an access token"},
			{Method: "POST", Path: "/login", Description: "Log in, returns the account's access token"},
			{Method: "GET", Path: "/messages", Description: "Get all messages (collection)"},
			{Method: "GET", Path: "/messages/:id", Description: "Get a single message by id"},
			{Method: "GET", Path: "/messages?liked=true", Description: "Get only liked messages (hearts > 0)"},
			{Method: "GET", Path: "/messages?search=happy", Description: "Search messages by text (example: happy)"},
			{Method: "POST", Path: "/messages", Description: "Post a new message (requires access token)"},
			{Method: "POST", Path: "/messages/:id/like", Description: "Add a heart to a message"},
		},
	})
}
