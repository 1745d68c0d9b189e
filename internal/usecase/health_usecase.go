package usecase

import (
	"context"
	"time"
)

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
}

// Pinger is satisfied by the optional backing services (Redis, Postgres).
type Pinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	environment string
	pingers     map[string]Pinger
	now         func() time.Time
}

// NewHealthUsecase reports the service as OK. Registered pingers are checked
// and reported under checks without changing the overall status, since none
// of them gate submissions.
func NewHealthUsecase(environment string, pingers map[string]Pinger) HealthUsecase {
	return &healthUsecase{environment: environment, pingers: pingers, now: time.Now}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:      "OK",
		Timestamp:   u.now().UTC().Format(time.RFC3339Nano),
		Environment: u.environment,
	}
	if len(u.pingers) == 0 {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status.Checks = make(map[string]string, len(u.pingers))
	for name, ping := range u.pingers {
		if err := ping(ctx); err != nil {
			status.Checks[name] = "unavailable"
			continue
		}
		status.Checks[name] = "ok"
	}
	return status
}
