package adoption

import (
	"fmt"
	"strings"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain"
)

// ApplicationStatus represents where an adoption application is in review.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusInterview ApplicationStatus = "interview"
	StatusCompleted ApplicationStatus = "completed"
	StatusRejected  ApplicationStatus = "rejected"
)

var statusLabels = map[ApplicationStatus]string{
	StatusPending:   "審核中",
	StatusInterview: "面試安排",
	StatusCompleted: "已完成",
	StatusRejected:  "未通過",
}

// IsValid returns true if the status is a recognized application status.
func (s ApplicationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal returns true once the shelter has made its decision.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Label returns the display label used when the backend omits one.
func (s ApplicationStatus) Label() string {
	return statusLabels[s]
}

// HousingType is the applicant's dwelling.
type HousingType string

const (
	HousingHouse     HousingType = "house"
	HousingApartment HousingType = "apartment"
	HousingCondo     HousingType = "condo"
	HousingFarm      HousingType = "farm"
)

// IsValid returns true if the housing type is recognized.
func (h HousingType) IsValid() bool {
	switch h {
	case HousingHouse, HousingApartment, HousingCondo, HousingFarm:
		return true
	}
	return false
}

// CreateApplication is the body of POST /applications.
type CreateApplication struct {
	PetID        string      `json:"pet_id" validate:"required"`
	HousingType  HousingType `json:"housing_type" validate:"housing"`
	OutdoorSpace string      `json:"outdoor_space" validate:"required"`
	IsRenting    bool        `json:"is_renting"`
	HasPets      bool        `json:"has_pets"`
	Experience   string      `json:"experience,omitempty"`
	FullName     string      `json:"full_name" validate:"required"`
	Phone        string      `json:"phone" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	Agreed       bool        `json:"agreed" validate:"eq=true"`
}

// Normalize trims free-text fields in place.
func (c *CreateApplication) Normalize() {
	c.PetID = strings.TrimSpace(c.PetID)
	c.OutdoorSpace = strings.TrimSpace(c.OutdoorSpace)
	c.Experience = strings.TrimSpace(c.Experience)
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
}

// Validate normalizes the request and checks required fields.
func (c *CreateApplication) Validate() error {
	c.Normalize()
	return domain.Validate(c, "invalid adoption application")
}

// Application is an adoption application as returned by the API.
type Application struct {
	CreateApplication
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Status        ApplicationStatus `json:"status"`
	StatusLabel   string            `json:"status_label"`
	InterviewDate string            `json:"interview_date,omitempty"`
	InterviewTime string            `json:"interview_time,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
}

// DisplayStatus prefers the backend label and falls back to the local one.
func (a Application) DisplayStatus() string {
	if a.StatusLabel != "" {
		return a.StatusLabel
	}
	if l := a.Status.Label(); l != "" {
		return l
	}
	return string(a.Status)
}

// Interview describes the scheduled interview, if any.
func (a Application) Interview() (string, bool) {
	if a.Status != StatusInterview || a.InterviewDate == "" {
		return "", false
	}
	if a.InterviewTime == "" {
		return a.InterviewDate, true
	}
	return fmt.Sprintf("%s %s", a.InterviewDate, a.InterviewTime), true
}
