package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const importLogTable = "import_log"

type ImportLogRepository interface {
	Save(ctx context.Context, result domain.ImportResult) error
	ListRecent(ctx context.Context, limit int) ([]domain.ImportResult, error)
}

type importLogRepository struct {
	conn *postgres.Connection
}

func NewImportLogRepository(conn *postgres.Connection) ImportLogRepository {
	return &importLogRepository{
		conn: conn,
	}
}

func (r *importLogRepository) Save(ctx context.Context, result domain.ImportResult) error {
	query, args, err := psql.
		Insert(importLogTable).
		Columns("batch_id", "source", "file_name", "records_total", "records_new",
			"records_updated", "records_failed", "line_items_count", "imported_at").
		Values(
			result.BatchID,
			string(result.Source),
			result.FileName,
			result.RecordsTotal,
			result.RecordsNew,
			result.RecordsUpdated,
			result.RecordsFailed,
			result.LineItemsCount,
			result.ImportedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return dbError(err)
	}

	return nil
}

func (r *importLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.ImportResult, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := psql.
		Select("batch_id, source, file_name, records_total, records_new, records_updated, records_failed, line_items_count, imported_at").
		From(importLogTable).
		OrderBy("imported_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.ImportResult, 0)
	for rows.Next() {
		var result domain.ImportResult
		var source string
		err := rows.Scan(
			&result.BatchID,
			&source,
			&result.FileName,
			&result.RecordsTotal,
			&result.RecordsNew,
			&result.RecordsUpdated,
			&result.RecordsFailed,
			&result.LineItemsCount,
			&result.ImportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de importação: %w", err)
		}
		result.Source = domain.ImportSource(source)
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}
