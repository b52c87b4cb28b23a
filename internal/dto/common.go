package dto

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/estetify/clinic-admin/internal/timezone"
)

// FormatDateBR converte um timestamp de auditoria para DD/MM/YYYY no
// fuso da clínica.
func FormatDateBR(t time.Time) string {
	return t.In(timezone.Location()).Format("02/01/2006")
}

// FormatISODateBR converte uma data ISO (YYYY-MM-DD) para DD/MM/YYYY.
// Valores não parseáveis ecoam sem alteração.
func FormatISODateBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// CalendarDate monta YYYY-MM-DDTHH:MM para o widget de calendário;
// sem hora, devolve apenas a data.
func CalendarDate(date, hm string) string {
	if date == "" {
		return ""
	}
	if len(hm) >= 5 {
		return date + "T" + hm[:5]
	}
	return date
}

// PhotoURL junta a base pública configurada com o path relativo
// armazenado; campo vazio vira null na serialização.
func PhotoURL(baseURL, path string) *string {
	if path == "" {
		return nil
	}
	url := strings.TrimSuffix(baseURL, "/") + path
	return &url
}

func ucFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
