package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
	"github.com/avilov/MDC-AppointmentService/pkg/dbmetrics"
	"github.com/avilov/MDC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с событиями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все события календаря, отсортированные по времени начала.
// Ядро сервиса всегда работает с полной выборкой: фильтрация по датам
// выполняется в памяти (domain.FilterByDate / domain.FilterByRange).
//
// Если в контексте есть активная транзакция, выборка выполняется в ней
// с блокировкой FOR UPDATE - это точка сериализации для создания событий.
func (r *Repository) List(ctx context.Context) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"duration_minutes",
		"created_at",
	).
		From("events").
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// Create сохраняет новое событие и возвращает его с заполненными id и created_at
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"date",
			"start_time",
			"end_time",
			"duration_minutes",
		).
		Values(
			event.Date,
			event.StartTime,
			event.EndTime,
			event.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time

	return event, nil
}

// scanEvents сканирует результаты запроса в слайс событий
func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)

	for rows.Next() {
		var event domain.Event
		var createdAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.Date,
			&event.StartTime,
			&event.EndTime,
			&event.DurationMinutes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
