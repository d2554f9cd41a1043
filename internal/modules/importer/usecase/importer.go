package usecase

import (
	"context"

	"vitals/internal/modules/importer/dto"
	importerin "vitals/internal/modules/importer/port/in"
	"vitals/internal/modules/importer/service"
)

type Interactor struct {
	svc *service.ImportService
}

func NewInteractor(svc *service.ImportService) importerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Scan(ctx context.Context, path string) (dto.ScanOutput, error) {
	result, err := i.svc.Scan(ctx, path)
	if err != nil {
		return dto.ScanOutput{}, err
	}
	types := result.DataTypes
	if types == nil {
		types = []string{}
	}
	return dto.ScanOutput{
		RecordsProcessed: result.RecordsProcessed,
		DataTypes:        types,
		DateRange: dto.DateRangeOutput{
			Start: result.DateRange.Start,
			End:   result.DateRange.End,
		},
		Warnings: result.Warnings,
	}, nil
}
