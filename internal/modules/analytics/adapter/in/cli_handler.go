package in

import (
	"context"
	"fmt"

	"vitals/internal/modules/analytics/dto"
	analyticsin "vitals/internal/modules/analytics/port/in"
	apperrors "vitals/internal/platform/errors"
)

const (
	minDays = 1
	maxDays = 90
)

// CLIHandler guards the analytics usecase: the day-range check happens here
// so the core can assume valid input once invoked.
type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) HRVReport(ctx context.Context, days int) (dto.HRVReportOutput, error) {
	if err := validateDays(days); err != nil {
		return dto.HRVReportOutput{}, err
	}
	return h.usecase.HRVReport(ctx, days)
}

func (h CLIHandler) SleepReport(ctx context.Context, days int) (dto.SleepReportOutput, error) {
	if err := validateDays(days); err != nil {
		return dto.SleepReportOutput{}, err
	}
	return h.usecase.SleepReport(ctx, days)
}

func (h CLIHandler) AlertCheck(ctx context.Context) (dto.AlertReportOutput, error) {
	return h.usecase.AlertCheck(ctx)
}

func validateDays(days int) error {
	if days < minDays || days > maxDays {
		return apperrors.WithCode(
			fmt.Errorf("%w: %d", apperrors.ErrInvalidRange, days),
			apperrors.CodeInvalidRange,
			fmt.Sprintf("pass --days between %d and %d", minDays, maxDays),
		)
	}
	return nil
}
