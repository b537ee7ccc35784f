package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

type fakeSource struct {
	table *domain.ReferenceTable
	path  string
}

func (s *fakeSource) Load(_ context.Context, path string) (*domain.ReferenceTable, error) {
	s.path = path
	return s.table, nil
}

func TestReferenceService_Load(t *testing.T) {
	source := &fakeSource{table: testTable()}
	svc := NewReferenceService(source)

	table, err := svc.Load(context.Background(), "/etc/reference.yaml")
	require.NoError(t, err)
	assert.Same(t, source.table, table)
	assert.Equal(t, "/etc/reference.yaml", source.path)

	_, err = NewReferenceService(nil).Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestReferenceService_Describe(t *testing.T) {
	svc := NewReferenceService(nil)

	assert.Equal(t, []driving.CategoryCount{
		{Category: "A-B - As-Built Plans and Construction", Entries: 2},
		{Category: "D - Manuals", Entries: 2},
		{Category: "G - Geotechnical", Entries: 2},
		{Category: "S - Survey", Entries: 2},
	}, svc.Describe(testTable()))
	assert.Nil(t, svc.Describe(nil))
}
