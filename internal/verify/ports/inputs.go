package ports

import (
	"context"

	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// VerifyUseCase is the driving port for running a verification task.
type VerifyUseCase interface {
	Execute(ctx context.Context, task domain.Task) (domain.Report, error)
}
