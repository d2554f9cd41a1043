package in

import (
	"context"

	"vitals/internal/modules/importer/dto"
)

type Usecase interface {
	Scan(ctx context.Context, path string) (dto.ScanOutput, error)
}
