package handlers

import (
	"net/http"

	"qsplan-backend/internal/auth"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross-origin clients are allowed, auth happens via the token query param
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ActivityHandler streams new activity events over a websocket so clients
// can refresh the feed without polling. Browsers cannot set headers on
// websocket requests, so the token travels as a query parameter instead.
type ActivityHandler struct {
	History    *services.HistoryService
	jwtManager *auth.JWTManager
}

func NewActivityHandler(history *services.HistoryService, jwtManager *auth.JWTManager) *ActivityHandler {
	return &ActivityHandler{History: history, jwtManager: jwtManager}
}

// Stream handles GET /api/history/live?token=...
func (h *ActivityHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if _, err := h.jwtManager.ValidateToken(r.URL.Query().Get("token")); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := h.History.Subscribe()
	defer cancel()

	// drain reads so close frames are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for event := range events {
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}
