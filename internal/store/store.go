// Package store keeps the loans, categories and statuses loaded from the
// API in memory and derives the views of the dashboard from them.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/internal/client"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Filter selects the loans returned by FilteredLoans.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPending  Filter = "pending"
	FilterReturned Filter = "returned"
)

// ParseFilter returns the Filter named s.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterAll, FilterPending, FilterReturned:
		return f, nil
	}

	return "", ErrUnknownFilter
}

var ErrUnknownFilter = errors.New("the filter must be one of all, pending or returned")

// Messages stored in Error when loading fails.
const (
	errLoadMeta  = "could not load categories and statuses"
	errLoadLoans = "could not load loans"
)

// API is the part of the API client used by the store.
type API interface {
	Categories(context.Context) ([]client.Category, error)
	Statuses(context.Context) ([]client.Status, error)
	Loans(context.Context) ([]client.Loan, error)
	CreateLoan(context.Context, client.LoanInput) (client.Loan, error)
	UpdateLoan(context.Context, uuid.UUID, client.LoanInput) (client.Loan, error)
	DeleteLoan(context.Context, uuid.UUID) error
}

// Store is the client side state of the loan tracker.
//
// Loads capture their errors in the state while mutations return them
// to the caller. It is safe for concurrent use.
type Store struct {
	api API

	mu         sync.RWMutex
	loans      []client.Loan
	categories []client.Category
	statuses   []client.Status
	loading    bool
	err        string
	filter     Filter
}

func New(api API) *Store {
	return &Store{
		api:    api,
		filter: FilterAll,
	}
}

// Loans returns the cached loans in their current order.
func (s *Store) Loans() []client.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.loans)
}

func (s *Store) Categories() []client.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *Store) Statuses() []client.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.statuses)
}

// Loading reports if a load is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failed load, or "" if the last
// load succeeded.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// startLoading marks the start of a load and clears the last error.
func (s *Store) startLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// LoadMeta replaces the cached categories and statuses.
//
// Both are requested concurrently. The cache is only updated if both
// requests succeed, otherwise the error is recorded in Error.
func (s *Store) LoadMeta(ctx context.Context) {
	s.startLoading()

	var categories []client.Category
	var statuses []client.Status

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.api.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.api.Statuses(gctx)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		log.Error().Err(err).Msg("Loading categories and statuses")
		s.err = errLoadMeta
		return
	}

	s.categories = categories
	s.statuses = statuses
}

// LoadLoans replaces the cached loans. Errors are recorded in Error.
func (s *Store) LoadLoans(ctx context.Context) {
	s.startLoading()

	loans, err := s.api.Loans(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		log.Error().Err(err).Msg("Loading loans")
		s.err = errLoadLoans
		return
	}

	s.loans = loans
}

// CreateLoan creates a loan and adds it in front of the cached loans.
func (s *Store) CreateLoan(ctx context.Context, input client.LoanInput) (client.Loan, error) {
	loan, err := s.api.CreateLoan(ctx, input)
	if err != nil {
		return client.Loan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans = slices.Insert(s.loans, 0, loan)

	return loan, nil
}

// UpdateLoan updates a loan and replaces the cached copy in place.
func (s *Store) UpdateLoan(ctx context.Context, id uuid.UUID, input client.LoanInput) (client.Loan, error) {
	loan, err := s.api.UpdateLoan(ctx, id, input)
	if err != nil {
		return client.Loan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i != -1 {
		s.loans[i] = loan
	}

	return loan, nil
}

// DeleteLoan deletes a loan and removes it from the cache.
func (s *Store) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	err := s.api.DeleteLoan(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans = slices.DeleteFunc(s.loans, func(l client.Loan) bool {
		return l.ID == id
	})

	return nil
}

func (s *Store) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.loans, func(l client.Loan) bool {
		return l.ID == id
	})
}

// FilteredLoans returns the loans matching the filter.
//
// If the status for the filter is not loaded, all loans are returned.
func (s *Store) FilteredLoans() []client.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var name string
	switch s.filter {
	case FilterPending:
		name = client.StatusPending
	case FilterReturned:
		name = client.StatusReturned
	default:
		return slices.Clone(s.loans)
	}

	statusID, ok := s.statusID(name)
	if !ok {
		return slices.Clone(s.loans)
	}

	return s.withStatus(statusID)
}

// TotalPendingAmount is the sum of the amounts of all pending loans.
// Loans without amount are not counted.
func (s *Store) TotalPendingAmount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	statusID, ok := s.statusID(client.StatusPending)
	if !ok {
		return total
	}

	for _, l := range s.withStatus(statusID) {
		if l.Amount.Valid {
			total = total.Add(l.Amount.Decimal)
		}
	}

	return total
}

func (s *Store) CountPending() int {
	return s.count(client.StatusPending)
}

func (s *Store) CountReturned() int {
	return s.count(client.StatusReturned)
}

func (s *Store) count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statusID, ok := s.statusID(name)
	if !ok {
		return 0
	}

	return len(s.withStatus(statusID))
}

// statusID returns the ID of the status with the given name. The caller
// must hold the lock.
func (s *Store) statusID(name string) (uint, bool) {
	i := slices.IndexFunc(s.statuses, func(st client.Status) bool {
		return st.Name == name
	})
	if i == -1 {
		return 0, false
	}

	return s.statuses[i].ID, true
}

// withStatus returns the loans with the status. The caller must hold the lock.
func (s *Store) withStatus(statusID uint) []client.Loan {
	loans := make([]client.Loan, 0)
	for _, l := range s.loans {
		if l.StatusID != nil && *l.StatusID == statusID {
			loans = append(loans, l)
		}
	}

	return loans
}
