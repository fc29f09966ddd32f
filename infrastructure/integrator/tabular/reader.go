package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrEmptyFile indica um arquivo sem linha de cabeçalho
var ErrEmptyFile = errors.New("arquivo vazio")

// Read carrega um CSV ou uma planilha XLSX, escolhendo pelo nome do arquivo
func Read(r io.Reader, fileName string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	default:
		return ReadCSV(r)
	}
}

// ReadCSV lê um CSV em UTF-8 (com ou sem BOM); bytes inválidos são tratados como Latin-1
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo")
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar o arquivo como Latin-1")
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o CSV")
	}

	return newTable(records)
}

// ReadXLSX lê a primeira planilha do arquivo
func ReadXLSX(r io.Reader) (*Table, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a planilha")
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a planilha %q", sheets[0])
	}

	return newTable(records)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	header := make([]string, len(records[0]))
	index := make(map[string]int, len(header))
	for i, column := range records[0] {
		column = strings.TrimSpace(column)
		header[i] = column
		if _, exists := index[column]; !exists && column != "" {
			index[column] = i
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, Row{values: record, index: index})
	}

	return &Table{Header: header, Rows: rows, index: index}, nil
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
