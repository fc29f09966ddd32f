package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// Códigos de erro
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso (3000-3999)
	ErrAdNotFound       = "RES_001" // Anúncio sem histórico
	ErrNoOrders         = "RES_002" // Nenhum pedido importado
	ErrResourceNotFound = "RES_003" // Rota ou recurso inexistente

	// Erros de importação (4000-4999)
	ErrUnsupportedSource = "IMP_001" // Origem de importação desconhecida
	ErrMissingColumns    = "IMP_002" // Colunas obrigatórias ausentes no arquivo
	ErrUnreadableFile    = "IMP_003" // Arquivo não pôde ser lido
	ErrFileTooLarge      = "IMP_004" // Arquivo maior que o limite

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrJobAlreadyRunning = "SRV_005" // Job já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrAdNotFound:          http.StatusNotFound,
	ErrNoOrders:            http.StatusNotFound,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrUnsupportedSource:   http.StatusBadRequest,
	ErrMissingColumns:      http.StatusUnprocessableEntity,
	ErrUnreadableFile:      http.StatusUnprocessableEntity,
	ErrFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
	ErrJobAlreadyRunning:   http.StatusConflict,
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(apiErr)
}
