package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sandevgo/mordomo/pkg/log"
)

// HandleWebSocket runs a chat channel over one connection. Each
// connection gets its own generated session id, so its context dies with
// the socket; side effects already committed to long-term memory are
// never rolled back on disconnect.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := log.FromCtx(r.Context())

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	sessionID := uuid.NewString()
	logger.Info().Str("session_id", sessionID).Msg("websocket connected")

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			logger.Debug().Err(err).Str("session_id", sessionID).Msg("websocket closed")
			return
		}

		message := strings.TrimSpace(string(data))
		if message == "" {
			continue
		}

		result := h.engine.Resolve(ctx, sessionID, message)

		payload, err := json.Marshal(result)
		if err != nil {
			logger.Error().Err(err).Msg("failed to marshal websocket reply")
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			logger.Debug().Err(err).Str("session_id", sessionID).Msg("websocket write failed")
			return
		}
	}
}
