package usecase

import (
	"context"
	"fmt"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// QuotaLedger answers "how many queries are left today" for a user whose
// plan is asserted by the calling application.
type QuotaLedger struct {
	counter repository.QuotaCounter
}

func NewQuotaLedger(counter repository.QuotaCounter) *QuotaLedger {
	return &QuotaLedger{counter: counter}
}

func (l *QuotaLedger) Status(ctx context.Context, userID string, plan entity.PlanTier) (entity.QuotaStatus, error) {
	if userID == "" {
		return entity.QuotaStatus{}, entity.ErrInvalidRequest
	}
	used, err := l.counter.Used(ctx, userID)
	if err != nil {
		return entity.QuotaStatus{}, fmt.Errorf("quota lookup failed: %w", err)
	}
	return entity.NewQuotaStatus(userID, plan, used), nil
}

// Consume records one answered query. Unlimited tiers are still counted so
// usage stays visible.
func (l *QuotaLedger) Consume(ctx context.Context, userID string, plan entity.PlanTier) (entity.QuotaStatus, error) {
	if userID == "" {
		return entity.QuotaStatus{}, entity.ErrInvalidRequest
	}

	used, ok, err := l.counter.IncrementWithin(ctx, userID, entity.CapabilitiesOf(plan).DailyQueries)
	if err != nil {
		return entity.QuotaStatus{}, fmt.Errorf("quota increment failed: %w", err)
	}
	status := entity.NewQuotaStatus(userID, plan, used)
	if !ok {
		return status, entity.ErrQuotaExhausted
	}
	return status, nil
}
