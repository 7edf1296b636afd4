package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет контактные данные клиента
// Каждое бронирование создает отдельную запись клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	customer.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("customers").
		Columns("id", "name", "email", "phone_number").
		Values(customer.ID, customer.Name, customer.Email, customer.PhoneNumber).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return customer, nil
}
