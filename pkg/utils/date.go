package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// formatos aceitos nos arquivos importados, na ordem de tentativa
var importDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseDate lê uma data YYYY-MM-DD; string vazia devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseImportDate tenta os formatos conhecidos sobre os primeiros 19 caracteres
func ParseImportDate(value string) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}
	if len(value) > 19 {
		value = value[:19]
	}

	for _, layout := range importDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return &date, true
		}
	}

	return nil, false
}
