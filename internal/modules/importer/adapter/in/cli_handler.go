package in

import (
	"context"

	"vitals/internal/modules/importer/dto"
	importerin "vitals/internal/modules/importer/port/in"
)

type CLIHandler struct {
	usecase importerin.Usecase
}

func NewCLIHandler(usecase importerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Scan(ctx context.Context, path string) (dto.ScanOutput, error) {
	return h.usecase.Scan(ctx, path)
}
