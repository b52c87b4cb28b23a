package dto

import "testing"

func TestFormatISODateBR(t *testing.T) {
	t.Run("converte ISO para DD/MM/YYYY", func(t *testing.T) {
		if got := FormatISODateBR("2026-09-01"); got != "01/09/2026" {
			t.Errorf("esperava 01/09/2026, obteve %s", got)
		}
	})

	t.Run("valor não parseável ecoa sem alteração", func(t *testing.T) {
		if got := FormatISODateBR("amanhã"); got != "amanhã" {
			t.Errorf("esperava eco, obteve %s", got)
		}
	})
}

func TestCalendarDate(t *testing.T) {
	t.Run("data e hora viram YYYY-MM-DDTHH:MM", func(t *testing.T) {
		if got := CalendarDate("2026-09-01", "14:30"); got != "2026-09-01T14:30" {
			t.Errorf("esperava 2026-09-01T14:30, obteve %s", got)
		}
	})

	t.Run("sem hora devolve só a data", func(t *testing.T) {
		if got := CalendarDate("2026-09-01", ""); got != "2026-09-01" {
			t.Errorf("esperava 2026-09-01, obteve %s", got)
		}
	})

	t.Run("hora com segundos é truncada", func(t *testing.T) {
		if got := CalendarDate("2026-09-01", "14:30:00"); got != "2026-09-01T14:30" {
			t.Errorf("esperava truncar segundos, obteve %s", got)
		}
	})

	t.Run("sem data devolve vazio", func(t *testing.T) {
		if got := CalendarDate("", "14:30"); got != "" {
			t.Errorf("esperava vazio, obteve %s", got)
		}
	})
}

func TestPhotoURL(t *testing.T) {
	t.Run("concatena base com path relativo", func(t *testing.T) {
		got := PhotoURL("http://localhost:8080", "/storage/users/a.webp")
		if got == nil || *got != "http://localhost:8080/storage/users/a.webp" {
			t.Errorf("url inesperada: %v", got)
		}
	})

	t.Run("base com barra final não duplica", func(t *testing.T) {
		got := PhotoURL("http://localhost:8080/", "/storage/users/a.webp")
		if got == nil || *got != "http://localhost:8080/storage/users/a.webp" {
			t.Errorf("url inesperada: %v", got)
		}
	})

	t.Run("path vazio vira nil", func(t *testing.T) {
		if got := PhotoURL("http://localhost:8080", ""); got != nil {
			t.Errorf("esperava nil, obteve %v", got)
		}
	})
}

func TestStatusLabels(t *testing.T) {
	t.Run("status de atendimento conhecidos", func(t *testing.T) {
		cases := map[string]string{
			"scheduled": "Agendado",
			"completed": "Concluído",
			"canceled":  "Cancelado",
		}
		for raw, want := range cases {
			if got := AppointmentStatusLabel(raw); got != want {
				t.Errorf("%s: esperava %s, obteve %s", raw, want, got)
			}
		}
	})

	t.Run("status de cliente conhecidos", func(t *testing.T) {
		cases := map[string]string{
			"active":   "Ativo",
			"inactive": "Inativo",
			"pending":  "Pendente",
			"canceled": "Cancelado",
		}
		for raw, want := range cases {
			if got := ClientStatusLabel(raw); got != want {
				t.Errorf("%s: esperava %s, obteve %s", raw, want, got)
			}
		}
	})

	t.Run("valor desconhecido ecoa capitalizado", func(t *testing.T) {
		if got := AppointmentStatusLabel("no_show"); got != "No_show" {
			t.Errorf("esperava No_show, obteve %s", got)
		}
		if got := ClientStatusLabel(""); got != "" {
			t.Errorf("esperava vazio, obteve %s", got)
		}
	})
}
