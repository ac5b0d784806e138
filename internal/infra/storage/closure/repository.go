package closure

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RST-ReservationService/pkg/psqlbuilder"
)

var closureColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил закрытия ресторана:
// разовые закрытые даты (closed_dates) и еженедельные окна (recurring_closures)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListClosedDates получает все закрытые даты, отсортированные по дате
func (r *Repository) ListClosedDates(ctx context.Context) ([]*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "created_at").
		From("closed_dates").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.ClosedDate, 0)
	for rows.Next() {
		var cd domain.ClosedDate
		var createdAt sql.NullTime
		if err := rows.Scan(&cd.ID, &cd.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListClosedDates - scan row: %v", ErrScanRow, err)
		}
		cd.CreatedAt = createdAt.Time
		dates = append(dates, &cd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// IsDateClosed проверяет, закрыт ли ресторан в указанную дату целиком
// Вызывается на каждой проверке доступности
func (r *Repository) IsDateClosed(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("closed_dates").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsDateClosed - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsDateClosed - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// AddClosedDate добавляет разовое закрытие на дату
func (r *Repository) AddClosedDate(ctx context.Context, date time.Time) (*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closed_dates").
		Columns("date").
		Values(date).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddClosedDate - build insert query: %v", ErrBuildQuery, err)
	}

	cd := domain.ClosedDate{Date: date}
	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cd.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddClosedDate - execute insert: %v", ErrExecQuery, err)
	}
	cd.CreatedAt = createdAt.Time

	return &cd, nil
}

// RemoveClosedDate удаляет разовое закрытие по дате
func (r *Repository) RemoveClosedDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closed_dates").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosedDateNotFound
	}

	return nil
}

// ListRecurringClosures получает все еженедельные закрытия,
// отсортированные по дню недели
func (r *Repository) ListRecurringClosures(ctx context.Context) ([]*domain.RecurringClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("recurring_closures").
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// ListActiveByWeekday получает активные еженедельные закрытия на день недели
// Используется калькулятором доступности
// Кэширования нет: деактивация правила видна на следующем же запросе
func (r *Repository) ListActiveByWeekday(ctx context.Context, dayOfWeek int) ([]*domain.RecurringClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("recurring_closures").
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// CreateRecurringClosure создает еженедельное закрытие
func (r *Repository) CreateRecurringClosure(ctx context.Context, closure *domain.RecurringClosure) (*domain.RecurringClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_closures").
		Columns("day_of_week", "start_time", "end_time", "active").
		Values(closure.DayOfWeek, closure.StartTime, closure.EndTime, closure.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecurringClosure - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&closure.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecurringClosure - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// ClosureUpdate частичное обновление еженедельного закрытия
// nil-поля не меняются
type ClosureUpdate struct {
	DayOfWeek *int
	StartTime *string
	EndTime   *string
	Active    *bool
}

// UpdateRecurringClosure обновляет поля еженедельного закрытия
func (r *Repository) UpdateRecurringClosure(ctx context.Context, id int64, upd *ClosureUpdate) (*domain.RecurringClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("recurring_closures").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.DayOfWeek != nil {
		updateBuilder = updateBuilder.Set("day_of_week", *upd.DayOfWeek)
	}
	if upd.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *upd.EndTime)
	}
	if upd.Active != nil {
		updateBuilder = updateBuilder.Set("active", *upd.Active)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(closureColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRecurringClosure - build update query: %v", ErrBuildQuery, err)
	}

	closure, err := scanClosure(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRecurringClosure - scan closure: %v", ErrScanRow, err)
	}

	return closure, nil
}

// DeleteRecurringClosure удаляет еженедельное закрытие
func (r *Repository) DeleteRecurringClosure(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("recurring_closures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRecurringClosure - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRecurringClosure - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteRecurringClosure - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

func (r *Repository) scanClosures(rows *sql.Rows) ([]*domain.RecurringClosure, error) {
	closures := make([]*domain.RecurringClosure, 0)

	for rows.Next() {
		closure, err := scanClosure(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %v", ErrScanRow, err)
		}
		closures = append(closures, closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClosure(row rowScanner) (*domain.RecurringClosure, error) {
	var closure domain.RecurringClosure
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&closure.ID,
		&closure.DayOfWeek,
		&closure.StartTime,
		&closure.EndTime,
		&closure.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return &closure, nil
}
