package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"

	"github.com/md-tools/revenue-atlas/pkg/adapters"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/models/store"
)

var benchmarkColumns = []any{
	"specialty", "avg_revenue_per_patient", "avg_payment",
	"em_level_1_share", "em_level_2_share", "em_level_3_share",
	"em_level_4_share", "em_level_5_share",
	"ccm_adoption", "rpm_adoption", "bhi_adoption", "awv_adoption",
}

// BenchmarkStore reads specialty benchmarks from the specialty_benchmarks
// table.
type BenchmarkStore struct {
	db      *sql.DB
	builder *goqu.Database
}

func NewBenchmarkStore(db *sql.DB) *BenchmarkStore {
	return &BenchmarkStore{
		db:      db,
		builder: goqu.New("postgres", db),
	}
}

// GetBenchmark looks a specialty up by exact name. Unknown specialties yield
// nil, not an error.
func (s *BenchmarkStore) GetBenchmark(ctx context.Context, specialty string) (*domain.SpecialtyBenchmark, error) {
	query, args, err := s.builder.Select(benchmarkColumns...).
		From("specialty_benchmarks").
		Where(goqu.Ex{"specialty": specialty}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building benchmark query: %w", err)
	}

	var row store.BenchmarkRow
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&row.Specialty,
		&row.AvgRevenuePerPatient,
		&row.AvgPayment,
		&row.EMLevel1Share,
		&row.EMLevel2Share,
		&row.EMLevel3Share,
		&row.EMLevel4Share,
		&row.EMLevel5Share,
		&row.CCMAdoption,
		&row.RPMAdoption,
		&row.BHIAdoption,
		&row.AWVAdoption,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("benchmark query for %q failed: %w", specialty, err)
	}

	bm := adapters.MapStoreBenchmarkToDomain(row)
	return &bm, nil
}
