package service

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

func (s *healthService) Ping(ctx context.Context) error {
	if s.checker == nil {
		return ErrStorageNotConfigured
	}
	return s.checker.PingContext(ctx)
}
