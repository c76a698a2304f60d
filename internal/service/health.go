package service

import (
	"context"

	"leagueops/internal/model"
)

// HealthProber issues one bounded health probe against a dependency.
type HealthProber interface {
	Health(ctx context.Context) model.DependencyHealth
}

// Dependency names a remote service this process depends on.
type Dependency struct {
	Name  string
	Probe HealthProber
}

// HealthService aggregates this service's liveness with one probe per
// declared dependency. Any unhealthy dependency makes the aggregate
// unhealthy; there are no retries and no partial credit.
type HealthService struct {
	service string
	deps    []Dependency
}

func NewHealthService(service string, deps ...Dependency) *HealthService {
	return &HealthService{
		service: service,
		deps:    deps,
	}
}

func (s *HealthService) Check(ctx context.Context) *model.HealthReport {
	report := &model.HealthReport{
		Service: s.service,
		Status:  model.HealthStatusHealthy,
	}

	if len(s.deps) == 0 {
		return report
	}

	report.Dependencies = make(map[string]model.DependencyHealth, len(s.deps))
	for _, dep := range s.deps {
		health := dep.Probe.Health(ctx)
		report.Dependencies[dep.Name] = health
		if health.Status != model.HealthStatusHealthy {
			report.Status = model.HealthStatusUnhealthy
		}
	}
	return report
}
