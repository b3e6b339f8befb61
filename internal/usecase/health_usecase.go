package usecase

import (
	"context"

	"contact-relay/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) domain.HealthStatus
}

type healthUsecase struct {
	serviceName string
}

// NewHealthUsecase reports liveness only; it never depends on provider configuration.
func NewHealthUsecase(serviceName string) HealthUsecase {
	return &healthUsecase{serviceName: serviceName}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:  "ok",
		Service: u.serviceName,
	}
}
