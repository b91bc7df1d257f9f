package database

import (
	"database/sql"
	"fmt"

	"github.com/rairline/booking-backend/internal/models"
)

// ErrProviderNotFound is returned when a payment provider lookup matches no row
var ErrProviderNotFound = fmt.Errorf("payment provider not found")

// ProviderRepository handles read access to the payment_providers table
type ProviderRepository struct {
	db DB
}

// NewProviderRepository creates a new ProviderRepository
func NewProviderRepository(db DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// List retrieves all payment providers ordered by id
func (r *ProviderRepository) List() ([]models.PaymentProvider, error) {
	query := `
		SELECT pp_id, url, name
		FROM payment_providers
		ORDER BY pp_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment providers: %w", err)
	}
	defer rows.Close()

	providers := []models.PaymentProvider{}
	for rows.Next() {
		var p models.PaymentProvider
		if err := rows.Scan(&p.ID, &p.URL, &p.Name); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	return providers, rows.Err()
}

// GetByID retrieves a payment provider by its id.
// Returns ErrProviderNotFound when absent.
func (r *ProviderRepository) GetByID(ppID string) (*models.PaymentProvider, error) {
	query := `
		SELECT pp_id, url, name
		FROM payment_providers
		WHERE pp_id = $1
	`

	provider := &models.PaymentProvider{}
	err := r.db.QueryRow(query, ppID).Scan(&provider.ID, &provider.URL, &provider.Name)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment provider: %w", err)
	}

	return provider, nil
}
