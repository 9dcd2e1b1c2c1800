package dto

import "github.com/spec-kit/vet-clinic-service/internal/auth"

// PrincipalResponse is the public view of an authenticated principal.
type PrincipalResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
	Source      string `json:"source"`
}

// NewPrincipalResponse maps a principal to its response shape.
func NewPrincipalResponse(p *auth.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:          p.ID,
		Email:       p.Email,
		Role:        p.Role,
		DisplayName: p.DisplayName,
		Source:      p.Source,
	}
}
