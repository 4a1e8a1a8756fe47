package listing

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
)

func init() {
	domain.RegisterValidation("pettype", func(fl validator.FieldLevel) bool {
		return pet.PetType(fl.Field().String()).IsValid()
	})
	domain.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return pet.Gender(fl.Field().String()).IsValid()
	})
	domain.RegisterValidation("petsize", func(fl validator.FieldLevel) bool {
		return pet.Size(fl.Field().String()).IsValid()
	})
}

// CreateListing is the body of POST /listings. ImageURL carries whatever
// reference the caller already has; encoding uploads is not done here.
type CreateListing struct {
	Name        string      `json:"name" validate:"required,max=100"`
	PetType     pet.PetType `json:"pet_type" validate:"pettype"`
	Breed       string      `json:"breed" validate:"required,max=100"`
	Age         string      `json:"age" validate:"required"`
	Gender      pet.Gender  `json:"gender" validate:"gender"`
	Size        pet.Size    `json:"size,omitempty" validate:"omitempty,petsize"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
}

// Validate trims free text and checks the listing before submission.
func (c *CreateListing) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Breed = strings.TrimSpace(c.Breed)
	c.Age = strings.TrimSpace(c.Age)
	c.Description = strings.TrimSpace(c.Description)
	return domain.Validate(c, "invalid listing")
}

// Listing is a pet profile a user has put up for adoption.
type Listing struct {
	CreateListing
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Status    ListingStatus `json:"status"`
	CreatedAt string        `json:"created_at,omitempty"`
}

// IsActive returns true if the listing is visible to adopters.
func (l Listing) IsActive() bool {
	return l.Status == StatusActive
}
