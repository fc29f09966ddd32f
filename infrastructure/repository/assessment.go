package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const (
	assessmentsTable = "ad_assessments"
	assessmentFields = "ad_name, phase, status, reason, total_spend, stop_loss, roas, ad_score, trend, trajectory, decay, days, last_date, evaluated_at, error_message"
)

// AssessmentRepository guarda a avaliação mais recente de cada anúncio
type AssessmentRepository interface {
	Upsert(ctx context.Context, assessment domain.ScalingAssessment) error
	GetByAdName(ctx context.Context, adName string) (*domain.ScalingAssessment, error)
	List(ctx context.Context, filters domain.AssessmentFilters) ([]domain.ScalingAssessment, error)
}

type assessmentRepository struct {
	conn *postgres.Connection
}

func NewAssessmentRepository(conn *postgres.Connection) AssessmentRepository {
	return &assessmentRepository{
		conn: conn,
	}
}

func (r *assessmentRepository) Upsert(ctx context.Context, a domain.ScalingAssessment) error {
	var decayJSON []byte
	if a.Decay != nil {
		data, err := marshalJSON(a.Decay)
		if err != nil {
			return err
		}
		decayJSON = data
	}

	var lastDate any
	if a.LastDate != nil {
		lastDate = a.LastDate.Format(dateLayout)
	}

	query, args, err := psql.
		Insert(assessmentsTable).
		Columns("ad_name", "phase", "status", "reason", "total_spend", "stop_loss", "roas", "ad_score",
			"trend", "trajectory", "decay", "days", "last_date", "evaluated_at", "error_message").
		Values(
			a.AdName,
			string(a.Phase),
			string(a.Status),
			a.Reason,
			a.TotalSpend,
			a.StopLoss,
			a.ROAS,
			a.AdScore,
			string(a.Trend),
			string(a.Trajectory),
			decayJSON,
			a.Days,
			lastDate,
			a.EvaluatedAt,
			a.ErrorMessage,
		).
		Suffix(`
			ON CONFLICT (ad_name) DO UPDATE SET
				phase = EXCLUDED.phase,
				status = EXCLUDED.status,
				reason = EXCLUDED.reason,
				total_spend = EXCLUDED.total_spend,
				stop_loss = EXCLUDED.stop_loss,
				roas = EXCLUDED.roas,
				ad_score = EXCLUDED.ad_score,
				trend = EXCLUDED.trend,
				trajectory = EXCLUDED.trajectory,
				decay = EXCLUDED.decay,
				days = EXCLUDED.days,
				last_date = EXCLUDED.last_date,
				evaluated_at = EXCLUDED.evaluated_at,
				error_message = EXCLUDED.error_message
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return dbError(err)
	}

	return nil
}

func (r *assessmentRepository) GetByAdName(ctx context.Context, adName string) (*domain.ScalingAssessment, error) {
	query, args, err := psql.
		Select(assessmentFields).
		From(assessmentsTable).
		Where("ad_name = ?", adName).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	assessment, err := r.scanAssessment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
	}

	return &assessment, nil
}

// List ordena da situação mais grave para a mais tranquila e depois pelo nome
func (r *assessmentRepository) List(ctx context.Context, filters domain.AssessmentFilters) ([]domain.ScalingAssessment, error) {
	builder := psql.
		Select(assessmentFields).
		From(assessmentsTable)

	if filters.Phase != nil {
		builder = builder.Where("phase = ?", string(*filters.Phase))
	}
	if filters.Status != nil {
		builder = builder.Where("status = ?", string(*filters.Status))
	}

	query, args, err := builder.
		OrderBy(`CASE status
			WHEN 'KILL' THEN 0
			WHEN 'LAST_CHANCE' THEN 1
			WHEN 'MONITOR' THEN 2
			WHEN 'CONTINUE' THEN 3
			ELSE 4 END`, "ad_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	assessments := make([]domain.ScalingAssessment, 0)
	for rows.Next() {
		assessment, err := r.scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
		}
		assessments = append(assessments, assessment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return assessments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *assessmentRepository) scanAssessment(row rowScanner) (domain.ScalingAssessment, error) {
	var a domain.ScalingAssessment
	var phase, status, trend, trajectory string
	var reason, errorMessage sql.NullString
	var decayJSON []byte
	var lastDate sql.NullTime

	err := row.Scan(
		&a.AdName,
		&phase,
		&status,
		&reason,
		&a.TotalSpend,
		&a.StopLoss,
		&a.ROAS,
		&a.AdScore,
		&trend,
		&trajectory,
		&decayJSON,
		&a.Days,
		&lastDate,
		&a.EvaluatedAt,
		&errorMessage,
	)
	if err != nil {
		return a, err
	}

	a.Phase = domain.Phase(phase)
	a.Status = domain.ScalingStatus(status)
	a.Trend = domain.Trend(trend)
	a.Trajectory = domain.Trajectory(trajectory)
	a.Reason = nullString(reason)
	a.ErrorMessage = nullString(errorMessage)

	if lastDate.Valid {
		d := lastDate.Time
		a.LastDate = &d
	}

	if decayJSON != nil {
		decay := &domain.DecayAssessment{}
		if err := json.Unmarshal(decayJSON, decay); err != nil {
			return a, fmt.Errorf("erro ao deserializar JSON de decay: %w", err)
		}
		a.Decay = decay
	}

	return a, nil
}
