package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/requests"
)

// ReviewNotifier fans out analyses that need a human radiologist to the
// review queue. Publishing must never fail an upload.
type ReviewNotifier interface {
	PublishReviewRequest(ctx context.Context, message *requests.ReviewNotification) error
}
