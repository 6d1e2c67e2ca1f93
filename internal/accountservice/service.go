// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	CreateAccount(ctx context.Context, id string, cur currency.Unit) error
	GetAccount(ctx context.Context, id string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo    Repo
	created prometheus.Counter
}

// New returns account service struct to manage account business logic.
func New(ar Repo, reg prometheus.Registerer) *Service {
	return &Service{
		repo: ar,
		created: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Account creation requests that succeeded, including repeated ones",
		}),
	}
}

// Create creates an account with zero balance in the given currency.
func (s *Service) Create(ctx context.Context, id, currencyCode string) error {
	l := zerolog.Ctx(ctx)

	cur, err := currencypkg.Parse(currencyCode)
	if err != nil {
		l.Info().Err(err).Send()
		return err
	}

	if err := s.repo.CreateAccount(ctx, id, cur); err != nil {
		logError(l, err)
		return err
	}

	s.created.Inc()

	return nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		logError(zerolog.Ctx(ctx), err)
		return account, err
	}

	return account, nil
}

func logError(l *zerolog.Logger, err error) {
	if errorspkg.KindOf(err) == errorspkg.Internal {
		l.Error().Err(err).Send()
		return
	}

	l.Info().Err(err).Send()
}
