package service

import (
	"context"
	"fmt"

	"vitals/internal/modules/importer/domain"
	importerout "vitals/internal/modules/importer/port/out"
	apperrors "vitals/internal/platform/errors"
)

// MaxExportBytes is the size cap checked before an export is read.
const MaxExportBytes = 100 << 20

type ImportService struct {
	reader importerout.ExportReader
}

func NewImportService(reader importerout.ExportReader) *ImportService {
	return &ImportService{reader: reader}
}

// Scan validates the file by metadata, then hands its contents to the
// structural scanner. The file is only ever read, never written.
func (s *ImportService) Scan(ctx context.Context, path string) (domain.ScanResult, error) {
	size, err := s.reader.Size(ctx, path)
	if err != nil {
		return domain.ScanResult{}, err
	}
	if size > MaxExportBytes {
		return domain.ScanResult{}, apperrors.WithCode(
			fmt.Errorf("%w: %d bytes", apperrors.ErrFileTooLarge, size),
			apperrors.CodeFileTooLarge,
			"split the export or use one under 100MB",
		)
	}
	text, err := s.reader.Read(ctx, path)
	if err != nil {
		return domain.ScanResult{}, err
	}
	return domain.Scan(text)
}
