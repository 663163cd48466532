package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/sitecredential"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
)

// CredentialService encrypts and stores site credentials outside of an
// AgentRunner transaction — the path POST /internal/save-credential uses.
// pkg/pmactions performs the equivalent write inline within its own
// transaction rather than calling this service, since it already holds
// the tx its chat append and transition share.
type CredentialService struct {
	client        *ent.Client
	credentialKey []byte
}

// NewCredentialService builds a CredentialService. credentialKey is the
// master key pkg/crypto derived from CREDENTIAL_ENCRYPTION_KEY at startup.
func NewCredentialService(client *ent.Client, credentialKey []byte) *CredentialService {
	return &CredentialService{client: client, credentialKey: credentialKey}
}

// SaveCredential encrypts value under a per-credential HKDF subkey and
// stores it for siteID. The plaintext never leaves this function.
func (s *CredentialService) SaveCredential(ctx context.Context, siteID, credentialType, value string) (*ent.SiteCredential, error) {
	if value == "" {
		return nil, NewValidationError("value", "must not be empty")
	}

	id := uuid.NewString()
	subKey, err := crypto.DeriveCredentialKey(s.credentialKey, id)
	if err != nil {
		return nil, fmt.Errorf("deriving credential subkey: %w", err)
	}
	nonce, ciphertext, err := crypto.Encrypt(subKey, []byte(value))
	if err != nil {
		return nil, fmt.Errorf("encrypting credential: %w", err)
	}

	created, err := s.client.SiteCredential.Create().
		SetID(id).
		SetSiteID(siteID).
		SetCredentialType(sitecredential.CredentialType(credentialType)).
		SetCiphertext(ciphertext).
		SetNonce(nonce).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("storing credential: %w", err)
	}
	return created, nil
}

// ListCredentials returns the credential metadata (type and id — never
// plaintext) stored for siteID.
func (s *CredentialService) ListCredentials(ctx context.Context, siteID string) ([]*ent.SiteCredential, error) {
	creds, err := s.client.SiteCredential.Query().
		Where(sitecredential.SiteIDEQ(siteID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing credentials for site %s: %w", siteID, err)
	}
	return creds, nil
}
