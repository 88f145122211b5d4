package core

import (
	"encoding/json"
	"time"
)

const (
	MordomoName      = "Mordomo"
	MordomoUserAgent = "Mordomo-Backend/0.1"
	MordomoVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Result kinds returned to the transport layer.
const (
	KindMessage = "message"
	KindAction  = "action"
)

// The closed set of tools the model may invoke.
const (
	ToolCreateAppointment = "create_appointment"
	ToolListAppointments  = "list_appointments"
)

// Appointment categories.
const (
	CategoryCompromisso = "compromisso"
	CategoryNota        = "nota"
	CategoryLembrete    = "lembrete"
)

type Function struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"` // JSON Schema
}

type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Turn is one message in a session's short-lived history. Immutable once
// appended.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Action is a structured shortcut result the frontend renders as a UI
// action instead of conversational text.
type Action struct {
	Action string `json:"action"`
	App    string `json:"app"`
	URL    string `json:"url"`
}

// Result is what the resolution engine hands to the transport layer.
type Result struct {
	Kind      string `json:"type"`
	Text      string `json:"payload"`
	SessionID string `json:"sessionId"`
}

type Appointment struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	EventTime *time.Time `json:"event_time,omitempty"`
	Category  string     `json:"category"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
}

type Weather struct {
	PlaceName    string  `json:"place_name"`
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"`
	HumidityPct  int     `json:"humidity_pct"`
	WindSpeed    float64 `json:"wind_speed"`
}

// ValidCategory reports whether c belongs to the appointment category enum.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCompromisso, CategoryNota, CategoryLembrete:
		return true
	}
	return false
}
