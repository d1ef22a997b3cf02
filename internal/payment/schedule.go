package payment

// Step is one stage of the simulated payment progress. The schedule is a
// client-side animation contract: it is walked in order with a fixed delay
// and is fully decoupled from how long the real order creation takes.
type Step struct {
	Label    string `json:"status"`
	Progress int    `json:"progress"`
}

// DefaultSchedule is the fixed quick-pay progress sequence.
func DefaultSchedule() []Step {
	return []Step{
		{Label: "Verificando datos...", Progress: 25},
		{Label: "Procesando pago...", Progress: 50},
		{Label: "Confirmando transacción...", Progress: 75},
		{Label: "Creando pedido...", Progress: 90},
		{Label: "¡Pago completado!", Progress: 100},
	}
}
