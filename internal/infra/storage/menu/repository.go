package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerrors"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

var menuColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий пунктов меню
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пункт меню
func (r *Repository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	item.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("menu_items").
		Columns("id", "name", "description", "duration_minutes", "price", "image_url").
		Values(item.ID, item.Name, item.Description, item.DurationMinutes, item.Price, item.ImageURL).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает пункт меню по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanMenuItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan menu item: %v", ErrScanRow, err)
	}

	return item, nil
}

// List возвращает все пункты меню, отсортированные по цене
func (r *Repository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		OrderBy("price ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Update обновляет пункт меню
func (r *Repository) Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("menu_items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("duration_minutes", item.DurationMinutes).
		Set("price", item.Price).
		Set("image_url", item.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return item, nil
}

// Delete удаляет пункт меню
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err, "") {
			return ErrMenuItemInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var description, imageURL sql.NullString

	err := row.Scan(
		&item.ID,
		&item.Name,
		&description,
		&item.DurationMinutes,
		&item.Price,
		&imageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if imageURL.Valid {
		item.ImageURL = &imageURL.String
	}

	return &item, nil
}
