package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

type fakeScanner struct {
	files      []domain.ArchiveFile
	err        error
	root       string
	extensions []string
}

func (s *fakeScanner) Scan(_ context.Context, root string, extensions []string) ([]domain.ArchiveFile, error) {
	s.root = root
	s.extensions = extensions
	return s.files, s.err
}

func TestInventoryService_Scan_Sorted(t *testing.T) {
	scanner := &fakeScanner{files: []domain.ArchiveFile{
		{Category: "G - Geotechnical", RelativePath: "Appendix G1/report.pdf"},
		{Category: "D - Manuals", RelativePath: "Appendix D2/pavement.pdf"},
		{Category: "D - Manuals", RelativePath: "Appendix D1/bridge.pdf"},
	}}
	svc := NewInventoryService(scanner)

	files, err := svc.Scan(context.Background(), "/archive", nil)
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Category+"/"+f.RelativePath)
	}
	assert.Equal(t, []string{
		"D - Manuals/Appendix D1/bridge.pdf",
		"D - Manuals/Appendix D2/pavement.pdf",
		"G - Geotechnical/Appendix G1/report.pdf",
	}, paths)
	assert.Equal(t, "/archive", scanner.root)
	assert.Equal(t, domain.DefaultAppSettings().Archive.InventoryExtensions, scanner.extensions)
}

func TestInventoryService_Scan_Extensions(t *testing.T) {
	scanner := &fakeScanner{}
	svc := NewInventoryService(scanner)

	_, err := svc.Scan(context.Background(), "/archive", []string{".pdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{".pdf"}, scanner.extensions)
}

func TestInventoryService_Scan_Errors(t *testing.T) {
	_, err := NewInventoryService(nil).Scan(context.Background(), "/archive", nil)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = NewInventoryService(&fakeScanner{}).Scan(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrArchiveRootRequired)

	boom := errors.New("walk failed")
	_, err = NewInventoryService(&fakeScanner{err: boom}).Scan(context.Background(), "/archive", nil)
	assert.ErrorIs(t, err, boom)
}

func TestInventoryService_CountByCategory(t *testing.T) {
	svc := NewInventoryService(nil)

	counts := svc.CountByCategory([]domain.ArchiveFile{
		{Category: "D - Manuals"},
		{Category: "D - Manuals"},
		{Category: "G - Geotechnical"},
	})
	assert.Equal(t, map[string]int{"D - Manuals": 2, "G - Geotechnical": 1}, counts)
	assert.Empty(t, svc.CountByCategory(nil))
}
