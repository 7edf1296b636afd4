package soldout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerrors"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий настроек sold-out (закрытие слота на конкретную дату)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create закрывает слот на дату
func (r *Repository) Create(ctx context.Context, slotID uuid.UUID, date time.Time) (*domain.SoldOutSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	setting := &domain.SoldOutSetting{
		ID:     uuid.New(),
		SlotID: slotID,
		Date:   domain.DateOnly(date),
	}

	query, args, err := psqlbuilder.Insert("sold_out_settings").
		Columns("id", "slot_id", "date").
		Values(setting.ID, setting.SlotID, setting.Date.Format(domain.DateFormat)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&setting.CreatedAt); err != nil {
		if pgerrors.IsUniqueViolation(err, "") {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return setting, nil
}

// Delete открывает слот на дату
func (r *Repository) Delete(ctx context.Context, slotID uuid.UUID, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sold_out_settings").
		Where(squirrel.Eq{"slot_id": slotID, "date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// Exists проверяет, закрыт ли слот на дату
func (r *Repository) Exists(ctx context.Context, slotID uuid.UUID, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("sold_out_settings").
		Where(squirrel.Eq{"slot_id": slotID, "date": date.Format(domain.DateFormat)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %w", ErrScanRow, err)
	}

	return true, nil
}

// ListByDate возвращает настройки sold-out на дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.SoldOutSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slot_id", "date", "created_at").
		From("sold_out_settings").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.SoldOutSetting, 0)
	for rows.Next() {
		var s domain.SoldOutSetting
		if err := rows.Scan(&s.ID, &s.SlotID, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}
		settings = append(settings, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// SlotIDsByDate возвращает множество ID слотов, закрытых на дату
func (r *Repository) SlotIDsByDate(ctx context.Context, date time.Time) (map[uuid.UUID]struct{}, error) {
	settings, err := r.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	ids := make(map[uuid.UUID]struct{}, len(settings))
	for _, s := range settings {
		ids[s.SlotID] = struct{}{}
	}
	return ids, nil
}

// CountByDate возвращает количество закрытых слотов на дату
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("sold_out_settings").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
