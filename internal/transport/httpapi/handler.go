// Package httpapi exposes the assistant over HTTP and WebSocket.
package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/internal/service/resolve"
	"github.com/sandevgo/mordomo/pkg/conv"
	"github.com/sandevgo/mordomo/pkg/log"
)

type Handler struct {
	engine      *resolve.Engine
	synthesizer core.Synthesizer
	transcriber core.Transcriber
	weather     core.WeatherProvider
	history     core.HistoryRepository
	defaultCity string
}

func NewHandler(
	engine *resolve.Engine,
	synthesizer core.Synthesizer,
	transcriber core.Transcriber,
	weather core.WeatherProvider,
	history core.HistoryRepository,
	defaultCity string,
) *Handler {
	return &Handler{
		engine:      engine,
		synthesizer: synthesizer,
		transcriber: transcriber,
		weather:     weather,
		history:     history,
		defaultCity: defaultCity,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	Type        string `json:"type"`
	Payload     string `json:"payload"`
	SessionID   string `json:"sessionId"`
	AudioBase64 string `json:"audioBase64,omitempty"`
	Humor       string `json:"humor"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		JSON(w, http.StatusBadRequest, map[string]string{"payload": "O silêncio é ensurdecedor."})
		return
	}

	// The store never invents ids; the boundary does.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result := h.engine.Resolve(r.Context(), sessionID, req.Message)

	resp := chatResponse{
		Type:      result.Kind,
		Payload:   result.Text,
		SessionID: result.SessionID,
		Humor:     humorOf(req.Message),
	}
	if result.Kind == core.KindMessage {
		resp.AudioBase64 = h.synthesize(r, result.Text)
	}

	JSON(w, http.StatusOK, resp)
}

// synthesize is best-effort: missing audio never fails the chat turn.
func (h *Handler) synthesize(r *http.Request, text string) string {
	if h.synthesizer == nil {
		return ""
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), conv.Speakable(text))
	if err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Msg("inline synthesis failed")
		return ""
	}
	if len(audio) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(audio)
}

func humorOf(message string) string {
	if strings.Contains(strings.ToLower(message), "merda") {
		return "angry"
	}
	return "neutral"
}

func (h *Handler) Speak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		Error(w, http.StatusBadRequest, "sem texto")
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), conv.Speakable(req.Text))
	if err != nil || len(audio) == 0 {
		log.FromCtx(r.Context()).Error().Err(err).Msg("synthesis failed")
		Error(w, http.StatusInternalServerError, "erro no TTS")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"audioBase64": base64.StdEncoding.EncodeToString(audio)})
}

func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		Error(w, http.StatusBadRequest, "áudio não detectado")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		Error(w, http.StatusBadRequest, "áudio não detectado")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		Error(w, http.StatusBadRequest, "áudio ilegível")
		return
	}

	filename := header.Filename
	if filename == "" {
		filename = "voice.webm"
	}

	text, err := h.transcriber.Transcribe(r.Context(), audio, filename)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("transcription failed")
		Error(w, http.StatusInternalServerError, "erro no STT")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		city = h.defaultCity
	}

	conditions, err := h.weather.Lookup(r.Context(), city)
	if err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Str("city", city).Msg("weather endpoint failed")
		Error(w, http.StatusInternalServerError, "clima offline")
		return
	}

	JSON(w, http.StatusOK, conditions)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.history.GetHistory(r.Context(), limit)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("history endpoint failed")
		Error(w, http.StatusInternalServerError, "memória indisponível")
		return
	}

	JSON(w, http.StatusOK, messages)
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Sistemas online, Senhor."))
}
