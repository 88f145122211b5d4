package assistant

import (
	"encoding/json"

	"github.com/sandevgo/mordomo/internal/core"
)

// The two tools offered on every completion request. The set is closed;
// anything else the model asks for is a validation failure.
var appointmentTools = []core.Tool{
	{
		Type: "function",
		Function: core.Function{
			Name:        core.ToolCreateAppointment,
			Description: "Registra compromissos, notas ou lembretes do usuário.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"title": {"type": "string", "description": "Título do compromisso"},
					"details": {"type": "string", "description": "Descrição adicional"},
					"event_time": {"type": "string", "description": "Data e hora em ISO 8601"},
					"category": {"type": "string", "enum": ["compromisso", "nota", "lembrete"]}
				},
				"required": ["title", "details"]
			}`),
		},
	},
	{
		Type: "function",
		Function: core.Function{
			Name:        core.ToolListAppointments,
			Description: "Consulta compromissos futuros salvos na agenda.",
		},
	},
}

type createAppointmentArgs struct {
	Title     string `json:"title"`
	Details   string `json:"details"`
	EventTime string `json:"event_time"`
	Category  string `json:"category"`
}
