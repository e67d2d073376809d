package handler

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"replyrush/internal/infrastructure/notify"
	"replyrush/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler upgrades dashboard connections and subscribes them to
// conversation and order events.
type StreamHandler struct {
	hub        *notify.Hub
	authClient *auth.Client
}

func NewStreamHandler(hub *notify.Hub, authClient *auth.Client) *StreamHandler {
	return &StreamHandler{
		hub:        hub,
		authClient: authClient,
	}
}

func (h *StreamHandler) Subscribe(c echo.Context) error {
	// Browsers cannot set headers on websocket upgrades, so the ID token
	// rides in the query string.
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	if _, err := h.authClient.VerifyIDToken(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed: %v", err)
		return err
	}

	client := &notify.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
