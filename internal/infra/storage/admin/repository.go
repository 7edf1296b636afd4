package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerrors"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает администратора (email хранится в нижнем регистре)
func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	admin.ID = uuid.New()
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))

	query, args, err := psqlbuilder.Insert("admins").
		Columns("id", "email", "password_hash").
		Values(admin.ID, admin.Email, admin.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&admin.CreatedAt); err != nil {
		if pgerrors.IsUniqueViolation(err, "") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return admin, nil
}

// GetByEmail получает администратора по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.getBy(ctx, squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))}, "GetByEmail")
}

// GetByID получает администратора по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, "GetByID")
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Eq, op string) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "created_at").
		From("admins").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var admin domain.Admin
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %v", ErrScanRow, op, err)
	}

	return &admin, nil
}
