package reconciliation

import "strings"

// NormalizePhone reduz o telefone a 10 dígitos, removendo os prefixos 91, 0 e 091.
// Retorna false quando o resultado não tem exatamente 10 dígitos.
func NormalizePhone(raw string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		digits = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	case len(digits) == 13 && strings.HasPrefix(digits, "091"):
		digits = digits[3:]
	}

	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

// NormalizeEmail deixa o email em minúsculas e exige um @
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(email, "@") {
		return "", false
	}
	return email, true
}

// NormalizeOrderID remove espaços e o # inicial
func NormalizeOrderID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	id = strings.TrimPrefix(id, "#")
	if id == "" {
		return "", false
	}
	return id, true
}
