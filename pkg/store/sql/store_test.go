package sql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkStore_GetBenchmark(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"specialty", "avg_revenue_per_patient", "avg_payment",
		"em_level_1_share", "em_level_2_share", "em_level_3_share",
		"em_level_4_share", "em_level_5_share",
		"ccm_adoption", "rpm_adoption", "bhi_adoption", "awv_adoption",
	}
	mock.ExpectQuery(`FROM "specialty_benchmarks" WHERE \("specialty" = \$1\)`).
		WithArgs("Cardiology").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("Cardiology", 310.0, 118.0, 0.01, 0.07, 0.38, 0.41, 0.13, 0.03, 0.04, 0.004, 0.12))

	s := NewBenchmarkStore(db)
	bm, err := s.GetBenchmark(context.Background(), "Cardiology")

	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.Equal(t, "Cardiology", bm.Specialty)
	assert.Equal(t, 310.0, bm.AvgRevenuePerPatient)
	assert.Equal(t, 0.41, bm.VisitShares.Level4)
	assert.Equal(t, 0.03, bm.Adoption.CCM)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBenchmarkStore_UnknownSpecialtyIsNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM "specialty_benchmarks"`).
		WithArgs("Unknown").
		WillReturnRows(sqlmock.NewRows([]string{"specialty"}))

	s := NewBenchmarkStore(db)
	bm, err := s.GetBenchmark(context.Background(), "Unknown")

	require.NoError(t, err)
	assert.Nil(t, bm)
}

func TestProviderStore_FetchProvider(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"npi", "name", "specialty", "city", "state",
		"total_patients", "total_payment", "total_services",
		"em_level_1_visits", "em_level_2_visits", "em_level_3_visits",
		"em_level_4_visits", "em_level_5_visits",
		"ccm_services", "rpm_services", "bhi_services", "awv_services",
	}
	mock.ExpectQuery(`FROM "provider_billing" WHERE \("npi" = \$1\)`).
		WithArgs("1234567890").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("1234567890", "Dr. Jane Doe", "Cardiology", "Austin", "TX",
				900, 190000.0, 2400, 20, 200, 1400, 600, 100, 24, 0, 0, 80))

	s := NewProviderStore(db)
	rec, err := s.FetchProvider(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, "1234567890", rec.NPI)
	assert.Equal(t, "Cardiology", rec.Specialty)
	assert.Equal(t, 900, rec.TotalPatients)
	assert.Equal(t, 1400, rec.Visits.Level3)
	assert.Equal(t, 24, rec.ProgramServices.CCM)
	assert.Equal(t, 80, rec.ProgramServices.AWV)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderStore_MissingProviderIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM "provider_billing"`).
		WithArgs("9999999999").
		WillReturnRows(sqlmock.NewRows([]string{"npi"}))

	s := NewProviderStore(db)
	_, err = s.FetchProvider(context.Background(), "9999999999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProviderStore_QueryErrorIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM "provider_billing"`).
		WithArgs("1234567890").
		WillReturnError(errors.New("connection reset"))

	s := NewProviderStore(db)
	_, err = s.FetchProvider(context.Background(), "1234567890")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}
