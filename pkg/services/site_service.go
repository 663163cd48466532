package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/site"
)

// SiteService manages customer-owned sites: the parent of credentials and
// issues. Every read is scoped to the caller's customer_id so one tenant
// can never enumerate or touch another's sites.
type SiteService struct {
	client *ent.Client
}

// NewSiteService builds a SiteService.
func NewSiteService(client *ent.Client) *SiteService {
	return &SiteService{client: client}
}

// CreateSite registers a new site under customerID.
func (s *SiteService) CreateSite(ctx context.Context, customerID, url, name string) (*ent.Site, error) {
	if url == "" {
		return nil, NewValidationError("url", "must not be empty")
	}
	if name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	created, err := s.client.Site.Create().
		SetID(uuid.NewString()).
		SetCustomerID(customerID).
		SetURL(url).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating site: %w", err)
	}
	return created, nil
}

// GetSite loads a site, returning ErrNotFound unless it belongs to
// customerID.
func (s *SiteService) GetSite(ctx context.Context, customerID, siteID string) (*ent.Site, error) {
	found, err := s.client.Site.Query().
		Where(site.IDEQ(siteID), site.CustomerIDEQ(customerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading site %s: %w", siteID, err)
	}
	return found, nil
}

// ListSites returns every site owned by customerID.
func (s *SiteService) ListSites(ctx context.Context, customerID string) ([]*ent.Site, error) {
	sites, err := s.client.Site.Query().
		Where(site.CustomerIDEQ(customerID)).
		Order(ent.Desc(site.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sites for customer %s: %w", customerID, err)
	}
	return sites, nil
}

// Owns reports whether siteID belongs to customerID, without leaking
// whether the site exists at all to an unauthorized caller — both "not
// found" and "belongs to someone else" return false, nil.
func (s *SiteService) Owns(ctx context.Context, customerID, siteID string) (bool, error) {
	count, err := s.client.Site.Query().
		Where(site.IDEQ(siteID), site.CustomerIDEQ(customerID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("checking site ownership: %w", err)
	}
	return count > 0, nil
}
