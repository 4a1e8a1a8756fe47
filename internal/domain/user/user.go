package user

import "context"

// User is the signed-in adopter.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	MemberSince string `json:"member_since,omitempty"`
}

// Stats are the counters on the profile header.
type Stats struct {
	ApplicationsCount int `json:"applications_count"`
	FavoritesCount    int `json:"favorites_count"`
	VisitsCount       int `json:"visits_count"`
}

// Directory defines remote reads for the current user.
type Directory interface {
	GetCurrentUser(ctx context.Context) (*User, error)
	GetUserStats(ctx context.Context) (*Stats, error)
}
