package validators

import (
	"net/mail"
	"strings"
)

func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress aceita "a@b"; exigimos um domínio com ponto
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(addr.Address[at+1:], ".")
}
