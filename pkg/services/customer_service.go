package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/customer"
)

// CustomerService manages the tenant root entity. There is no public
// customer-signup endpoint in scope; customers are provisioned
// out-of-band and looked up here by id or email for ownership checks and
// API auth.
type CustomerService struct {
	client *ent.Client
}

// NewCustomerService builds a CustomerService.
func NewCustomerService(client *ent.Client) *CustomerService {
	return &CustomerService{client: client}
}

// CreateCustomer provisions a new tenant.
func (s *CustomerService) CreateCustomer(ctx context.Context, email string) (*ent.Customer, error) {
	if email == "" {
		return nil, NewValidationError("email", "must not be empty")
	}
	customer, err := s.client.Customer.Create().
		SetID(uuid.NewString()).
		SetEmail(email).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

// GetCustomer loads a customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*ent.Customer, error) {
	customer, err := s.client.Customer.Get(ctx, customerID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading customer %s: %w", customerID, err)
	}
	return customer, nil
}

// GetCustomerByEmail looks up a customer by its unique email, the identity
// the API's auth middleware resolves a bearer token to.
func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (*ent.Customer, error) {
	cust, err := s.client.Customer.Query().
		Where(customer.EmailEQ(email)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading customer by email: %w", err)
	}
	return cust, nil
}
