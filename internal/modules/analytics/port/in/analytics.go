package in

import (
	"context"

	"vitals/internal/modules/analytics/dto"
)

// Usecase is the analytics surface the command layer and the TUI consume.
// Day counts are validated by the inbound adapter before reaching it.
type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	HRVReport(ctx context.Context, days int) (dto.HRVReportOutput, error)
	SleepReport(ctx context.Context, days int) (dto.SleepReportOutput, error)
	AlertCheck(ctx context.Context) (dto.AlertReportOutput, error)
}
