package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	batchIDLength = 12
	batchIDPrefix = "imp_"
)

// GenerateID gera o identificador de um lote de importação
func GenerateID() (string, error) {
	id, err := gonanoid.Generate(characters, batchIDLength)
	if err != nil {
		return "", err
	}
	return batchIDPrefix + id, nil
}
