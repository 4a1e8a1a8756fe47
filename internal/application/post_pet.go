package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
)

// PostPetForm creates a new adoption listing.
type PostPetForm struct {
	repo   listing.ListingRepository
	logger *zap.Logger

	mu         sync.Mutex
	data       listing.CreateListing
	submitting bool
	submitErr  string
	listingID  string
	submitted  bool
}

// NewPostPetForm creates an empty form with the default choices selected.
func NewPostPetForm(repo listing.ListingRepository, logger *zap.Logger) *PostPetForm {
	return &PostPetForm{
		repo:   repo,
		logger: named(logger, "post_pet"),
		data: listing.CreateListing{
			PetType: pet.PetTypeDog,
			Gender:  pet.GenderMale,
			Size:    pet.SizeMedium,
		},
	}
}

// Data returns a copy of the entered fields.
func (f *PostPetForm) Data() listing.CreateListing {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Edit applies fn to the entered fields.
func (f *PostPetForm) Edit(fn func(*listing.CreateListing)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.data)
}

// Submit validates and creates the listing. Failures are exposed through
// SubmitError and returned.
func (f *PostPetForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.submitting = true
	f.submitErr = ""
	req := f.data
	f.mu.Unlock()

	var res *listing.CreateResult
	err := req.Validate()
	if err == nil {
		res, err = f.repo.CreateListing(ctx, req)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.submitErr = apiclient.Message(err, FallbackPost)
		f.logger.Error("failed to create listing", zap.String("name", req.Name), zap.Error(err))
		return err
	}
	f.submitted = true
	f.listingID = res.ListingID
	f.logger.Info("listing created", zap.String("listing_id", res.ListingID))
	return nil
}

// SubmitError returns the message of the last failed submission, or "".
func (f *PostPetForm) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Submitted reports whether the listing was created and returns its id.
func (f *PostPetForm) Submitted() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listingID, f.submitted
}
