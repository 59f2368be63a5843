package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// Collaborator is a user invited to manage a single domain.
type Collaborator struct {
	ID         int64  `json:"id"`
	DomainID   int64  `json:"domain_id"`
	DomainName string `json:"domain_name"`
	UserID     int64  `json:"user_id,omitempty"`
	UserEmail  string `json:"user_email"`
	Invitation bool   `json:"invitation"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	AcceptedAt string `json:"accepted_at,omitempty"`
}

// CollaboratorAttributes are the parameters for adding a collaborator.
type CollaboratorAttributes struct {
	Email string `json:"email"`
}

func collaboratorPath(accountID, domainIdentifier string, collaboratorID int64) string {
	path := domainPath(accountID, domainIdentifier) + "/collaborators"
	if collaboratorID != 0 {
		path += fmt.Sprintf("/%d", collaboratorID)
	}
	return path
}

// ListCollaborators lists the collaborators of a domain.
func (s *DomainsService) ListCollaborators(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]Collaborator, *Response, error) {
	collaborators, resp, err := getList[Collaborator](ctx, s.client, collaboratorPath(accountID, domainIdentifier, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list collaborators for %q: %w", domainIdentifier, err)
	}
	return collaborators, resp, nil
}

// ListCollaboratorsAll lists every collaborator of a domain.
func (s *DomainsService) ListCollaboratorsAll(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]Collaborator, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Collaborator, *Response, error) {
		return s.ListCollaborators(ctx, accountID, domainIdentifier, &page)
	})
}

// AddCollaborator invites a user to a domain. Users without a DNSimple
// account get an invitation and Invitation is true.
func (s *DomainsService) AddCollaborator(ctx context.Context, accountID, domainIdentifier string, attributes CollaboratorAttributes) (*Collaborator, *Response, error) {
	collaborator, resp, err := getData[Collaborator](ctx, s.client, http.MethodPost, collaboratorPath(accountID, domainIdentifier, 0), attributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to add collaborator to %q: %w", domainIdentifier, err)
	}
	return &collaborator, resp, nil
}

// RemoveCollaborator removes a collaborator from a domain.
func (s *DomainsService) RemoveCollaborator(ctx context.Context, accountID, domainIdentifier string, collaboratorID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, collaboratorPath(accountID, domainIdentifier, collaboratorID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to remove collaborator %d from %q: %w", collaboratorID, domainIdentifier, err)
	}
	return resp, nil
}
