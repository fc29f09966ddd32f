package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

// Table é o conteúdo de um arquivo tabular com cabeçalho
type Table struct {
	Header []string
	Rows   []Row
	index  map[string]int
}

// Has informa se a coluna existe no cabeçalho
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// FirstPresent devolve o primeiro nome de coluna existente entre os sinônimos
func (t *Table) FirstPresent(names ...string) (string, bool) {
	for _, name := range names {
		if t.Has(name) {
			return name, true
		}
	}
	return "", false
}

// Missing devolve as colunas obrigatórias ausentes
func (t *Table) Missing(required ...string) []string {
	missing := make([]string, 0)
	for _, column := range required {
		if !t.Has(column) {
			missing = append(missing, column)
		}
	}
	return missing
}

// MissingColumnsError lista as colunas obrigatórias que o arquivo não tem
type MissingColumnsError struct {
	Columns   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	available := e.Available
	if len(available) > 15 {
		available = available[:15]
	}
	return fmt.Sprintf("colunas obrigatórias ausentes: %v. Colunas disponíveis: %v", e.Columns, available)
}

// Row é uma linha de dados acessada pelo nome da coluna
type Row struct {
	values []string
	index  map[string]int
}

// String devolve o valor aparado da primeira coluna existente entre os sinônimos
func (r Row) String(columns ...string) string {
	for _, column := range columns {
		i, ok := r.index[column]
		if !ok {
			continue
		}
		if i >= len(r.values) {
			return ""
		}
		return strings.TrimSpace(r.values[i])
	}
	return ""
}

// Float converte o valor numérico; vazio ou inválido devolve ok=false
func (r Row) Float(columns ...string) (float64, bool) {
	return ParseFloat(r.String(columns...))
}

// FloatOrZero é Float com 0 para valores ausentes
func (r Row) FloatOrZero(columns ...string) float64 {
	v, _ := r.Float(columns...)
	return v
}

// Int aceita valores com casas decimais ("3.0") e trunca
func (r Row) Int(columns ...string) (int, bool) {
	v, ok := r.Float(columns...)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func (r Row) Date(columns ...string) *time.Time {
	date, _ := utils.ParseImportDate(r.String(columns...))
	return date
}

// ParseFloat remove separadores de milhar, símbolo de moeda e sinal de percentual
func ParseFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	value = strings.NewReplacer(",", "", "₹", "", "%", "", " ", "").Replace(value)
	if value == "-" {
		return 0, false
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
