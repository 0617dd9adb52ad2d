package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/md-tools/revenue-atlas/pkg/adapters"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/models/store"
)

var providerColumns = []any{
	"npi", "name", "specialty", "city", "state",
	"total_patients", "total_payment", "total_services",
	"em_level_1_visits", "em_level_2_visits", "em_level_3_visits",
	"em_level_4_visits", "em_level_5_visits",
	"ccm_services", "rpm_services", "bhi_services", "awv_services",
}

// ProviderStore reads provider billing summaries from the provider_billing
// table.
type ProviderStore struct {
	db      *sql.DB
	builder *goqu.Database
}

func NewProviderStore(db *sql.DB) *ProviderStore {
	return &ProviderStore{
		db:      db,
		builder: goqu.New("postgres", db),
	}
}

// FetchProvider returns domain.ErrNotFound when the id has no row.
func (s *ProviderStore) FetchProvider(ctx context.Context, npi string) (*domain.ProviderRecord, error) {
	query, args, err := s.builder.Select(providerColumns...).
		From("provider_billing").
		Where(goqu.Ex{"npi": npi}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building provider query: %w", err)
	}

	var row store.ProviderRow
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&row.NPI,
		&row.Name,
		&row.Specialty,
		&row.City,
		&row.State,
		&row.TotalPatients,
		&row.TotalPayment,
		&row.TotalServices,
		&row.EMLevel1Visits,
		&row.EMLevel2Visits,
		&row.EMLevel3Visits,
		&row.EMLevel4Visits,
		&row.EMLevel5Visits,
		&row.CCMServices,
		&row.RPMServices,
		&row.BHIServices,
		&row.AWVServices,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("provider query for %q failed: %w", npi, err)
	}

	rec := adapters.MapStoreProviderToDomain(row)
	return &rec, nil
}
