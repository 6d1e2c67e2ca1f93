// Package operationservice manages business logic layer of operations.
package operationservice

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Repo provides data access layer interface needed by operation service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package operationservice
type Repo interface {
	Apply(ctx context.Context, id string, diff map[string]string) error
}

// Outcomes counted by ledger_operations_total.
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultFailed   = "failed"
)

// Service facilitates operation service layer logic.
type Service struct {
	repo    Repo
	results *prometheus.CounterVec
}

// New returns operation service struct to manage operation business logic.
func New(or Repo, reg prometheus.Registerer) *Service {
	return &Service{
		repo: or,
		results: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Operation requests by outcome",
		}, []string{"result"}),
	}
}

// Apply applies the operation with the given id and balance changes.
//
// Repeating a request returns the outcome of its first run.
func (s *Service) Apply(ctx context.Context, id string, diff map[string]string) error {
	l := zerolog.Ctx(ctx)

	err := s.repo.Apply(ctx, id, diff)
	s.results.WithLabelValues(result(err)).Inc()

	switch {
	case err == nil:
		return nil
	case errorspkg.KindOf(err) == errorspkg.Internal:
		l.Error().Err(err).Str("operation_id", id).Send()
	default:
		l.Info().Err(err).Str("operation_id", id).Send()
	}

	return err
}

func result(err error) string {
	if err == nil {
		return ResultApplied
	}

	switch errorspkg.KindOf(err) {
	case errorspkg.Internal:
		return ResultFailed
	case errorspkg.Conflict:
		return ResultConflict
	default:
		return ResultRejected
	}
}
