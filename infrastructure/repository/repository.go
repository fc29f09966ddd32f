package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
)

const (
	dateLayout = "2006-01-02"

	// linhas por INSERT em cargas em lote
	upsertChunkSize = 500
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// dbError padroniza erros de execução, expondo o código do Postgres quando houver
func dbError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

// upsertCounted executa um INSERT ... RETURNING (xmax = 0) e conta inseridos e atualizados
func upsertCounted(ctx context.Context, q postgres.Queryer, builder squirrel.InsertBuilder) (inserted, updated int, err error) {
	query, args, err := builder.Suffix("RETURNING (xmax = 0) AS inserted").ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, 0, dbError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var isNew bool
		if err := rows.Scan(&isNew); err != nil {
			return 0, 0, fmt.Errorf("erro ao escanear resultado do upsert: %w", err)
		}
		if isNew {
			inserted++
		} else {
			updated++
		}
	}

	if err = rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return inserted, updated, nil
}

func chunks(total, size int) [][2]int {
	out := make([][2]int, 0, total/size+1)
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

func marshalJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar JSON: %w", err)
	}
	return data, nil
}

func nullString(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}
