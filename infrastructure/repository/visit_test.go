package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestBuildVisitQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		filters     domain.VisitFilters
		wantArgs    []interface{}
		contains    []string
		notContains []string
	}{
		{
			name:     "Somente período",
			filters:  domain.VisitFilters{StartDate: start, EndDate: end},
			wantArgs: []interface{}{"2024-01-01", "2024-01-31"},
			contains: []string{
				"sv.visit_date AS tanggal",
				"WHERE sv.visit_date BETWEEN $1 AND $2",
				"ORDER BY sv.visit_date ASC, sv.id ASC",
			},
			notContains: []string{"s.area_id =", "s.account_id ="},
		},
		{
			name: "Período, área e conta",
			filters: domain.VisitFilters{
				StartDate: start,
				EndDate:   end,
				AreaID:    stringPtr("10"),
				AccountID: stringPtr("7"),
			},
			wantArgs: []interface{}{"2024-01-01", "2024-01-31", "10", "7"},
			contains: []string{
				"sv.visit_date BETWEEN $1 AND $2 AND s.area_id = $3 AND s.account_id = $4",
			},
		},
		{
			name: "Período e conta",
			filters: domain.VisitFilters{
				StartDate: start,
				EndDate:   end,
				AccountID: stringPtr("7"),
			},
			wantArgs:    []interface{}{"2024-01-01", "2024-01-31", "7"},
			contains:    []string{"sv.visit_date BETWEEN $1 AND $2 AND s.account_id = $3"},
			notContains: []string{"s.area_id ="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildVisitQuery(tt.filters).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, args)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.notContains {
				assert.NotContains(t, query, fragment)
			}
		})
	}
}
