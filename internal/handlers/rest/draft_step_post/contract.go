//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_step_post_test
package draft_step_post

import (
	"context"

	"amerex/internal/entities"
	"amerex/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitStep(
		ctx context.Context,
		draftID string,
		userID int64,
		step entities.DraftStepType,
		modify entities.DraftModify,
	) (*entities.Draft, error)
}
