package handler

import (
	"context"
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/dafibh/fortuna/budget-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// anonymousSubject identifies views when auth is disabled
const anonymousSubject = "local"

// JWTValidator validates JWT tokens and returns the subject
type JWTValidator interface {
	ValidateToken(ctx context.Context, token string) (subject string, err error)
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	store          *service.BudgetStore
	validator      JWTValidator
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler. A nil validator accepts
// connections without a token.
func NewWebSocketHandler(hub *websocket.Hub, store *service.BudgetStore, validator JWTValidator, allowedOrigins []string) *WebSocketHandler {
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		store:          store,
		validator:      validator,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients send no Origin header
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// authenticate returns the token subject, or "" with the reason it was rejected
func (h *WebSocketHandler) authenticate(c echo.Context) (subject string, reason string) {
	if h.validator == nil {
		return anonymousSubject, ""
	}

	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return "", "Missing token"
	}

	subject, err := h.validator.ValidateToken(c.Request().Context(), token)
	if err != nil || subject == "" {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
		return "", "Invalid token"
	}
	return subject, ""
}

// HandleWS godoc
// @Summary Subscribe to budget changes
// @Description Upgrades to a WebSocket. The first message is a budget.snapshot event; every change follows as an event carrying the new document.
// @Tags realtime
// @Param token query string false "Access token, required when auth is enabled"
// @Success 101
// @Failure 401 {object} ProblemDetails
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	subject, reason := h.authenticate(c)
	if subject == "" {
		return NewUnauthorizedError(c, reason)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, subject, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("subject", subject).
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	// Registered before the snapshot is taken so no change can fall between the two
	snapshot := websocket.BudgetSnapshot(service.ChangePayload{Document: h.store.Snapshot()})
	if data, err := snapshot.ToJSON(); err != nil {
		log.Error().Err(err).Msg("Failed to encode budget snapshot")
	} else if err := client.Send(data); err != nil {
		log.Warn().Err(err).Str("client_id", client.ID()).Msg("Failed to queue budget snapshot")
	}

	go client.Serve()

	return nil
}
