package out

import (
	"context"
	"fmt"
	"os"

	importerout "vitals/internal/modules/importer/port/out"
	apperrors "vitals/internal/platform/errors"
)

type LocalExportReader struct{}

func NewLocalExportReader() importerout.ExportReader {
	return &LocalExportReader{}
}

func (r *LocalExportReader) Size(_ context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, apperrors.WithCode(
				fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, path),
				apperrors.CodeFileNotFound,
				"check the path to the exported XML file",
			)
		}
		return 0, fmt.Errorf("stat export: %w", err)
	}
	return info.Size(), nil
}

func (r *LocalExportReader) Read(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}
	return string(b), nil
}
