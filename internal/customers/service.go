package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Service manages the customer collection. Records are created and deleted
// whole; there is no in-place edit outside the demo reset.
type Service struct {
	store *store.Store
}

// NewService builds Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all customers.
func (s *Service) List(ctx context.Context) ([]model.Customer, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Customers, nil
}

// Create records a new customer with a generated id, prepended to the list.
// An empty status defaults to Prospect, the form's first option.
func (s *Service) Create(ctx context.Context, input CreateCustomerInput) (model.Customer, error) {
	status := input.Status
	if status == "" {
		status = model.CustomerStatusProspect
	}
	if !status.IsValid() {
		return model.Customer{}, fmt.Errorf("customers: invalid status %q", status)
	}
	c := model.Customer{
		ID:     shared.NewID("C"),
		Name:   strings.TrimSpace(input.Name),
		Phone:  strings.TrimSpace(input.Phone),
		City:   strings.TrimSpace(input.City),
		Status: status,
	}
	err := s.store.Update(ctx, func(st *store.State) error {
		st.Customers = append([]model.Customer{c}, st.Customers...)
		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// Delete removes a customer by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(st *store.State) error {
		kept := st.Customers[:0]
		found := false
		for _, c := range st.Customers {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return fmt.Errorf("customers: %s: %w", id, shared.ErrNotFound)
		}
		st.Customers = kept
		return nil
	})
}
