package adoption

import "context"

// SubmitResult is what the API returns after accepting an application.
type SubmitResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"application_id,omitempty"`
}

// ApplicationRepository defines remote operations for adoption applications.
type ApplicationRepository interface {
	GetApplications(ctx context.Context) ([]Application, error)
	GetApplication(ctx context.Context, id string) (*Application, error)
	SubmitApplication(ctx context.Context, req CreateApplication) (*SubmitResult, error)
}
