package dto

// Tradução fixa dos status para exibição. Valores fora da tabela caem
// num eco capitalizado do valor cru, nunca em erro.

var appointmentStatusLabels = map[string]string{
	"scheduled": "Agendado",
	"completed": "Concluído",
	"canceled":  "Cancelado",
}

var clientStatusLabels = map[string]string{
	"active":   "Ativo",
	"inactive": "Inativo",
	"pending":  "Pendente",
	"canceled": "Cancelado",
}

func AppointmentStatusLabel(raw string) string {
	if label, ok := appointmentStatusLabels[raw]; ok {
		return label
	}
	return ucFirst(raw)
}

func ClientStatusLabel(raw string) string {
	if label, ok := clientStatusLabels[raw]; ok {
		return label
	}
	return ucFirst(raw)
}
