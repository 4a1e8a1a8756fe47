package application

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
)

// Adoption form steps.
const (
	StepHousing    = 1
	StepExperience = 2
	StepContact    = 3
)

var stepTitles = map[int]string{
	StepHousing:    "家庭環境",
	StepExperience: "領養經驗",
	StepContact:    "聯絡資訊",
}

// ErrSubmitting is returned when a submission is already in flight.
var ErrSubmitting = errors.New("submission in progress")

// AdoptionForm is the three-step adoption application for one pet.
type AdoptionForm struct {
	repo   adoption.ApplicationRepository
	logger *zap.Logger

	mu            sync.Mutex
	step          int
	data          adoption.CreateApplication
	submitting    bool
	submitErr     string
	applicationID string
	submitted     bool
}

// NewAdoptionForm starts an application for petID at the first step.
func NewAdoptionForm(repo adoption.ApplicationRepository, petID string, logger *zap.Logger) *AdoptionForm {
	return &AdoptionForm{
		repo:   repo,
		logger: named(logger, "adoption_form"),
		step:   StepHousing,
		data: adoption.CreateApplication{
			PetID:        petID,
			HousingType:  adoption.HousingHouse,
			OutdoorSpace: "fence",
		},
	}
}

// Step returns the current step, 1 to 3.
func (f *AdoptionForm) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// StepTitle returns the heading of the current step.
func (f *AdoptionForm) StepTitle() string {
	return stepTitles[f.Step()]
}

// Data returns a copy of the entered fields.
func (f *AdoptionForm) Data() adoption.CreateApplication {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Edit applies fn to the entered fields. The pet id cannot be changed.
func (f *AdoptionForm) Edit(fn func(*adoption.CreateApplication)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	petID := f.data.PetID
	fn(&f.data)
	f.data.PetID = petID
}

// CanSubmit reports whether the last step has the fields the submit button
// requires.
func (f *AdoptionForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step == StepContact && !f.submitting &&
		f.data.FullName != "" && f.data.Phone != "" && f.data.Agreed
}

// Next advances one step; on the last step it submits.
func (f *AdoptionForm) Next(ctx context.Context) error {
	f.mu.Lock()
	if f.step < StepContact {
		f.step++
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()
	return f.Submit(ctx)
}

// Prev goes back one step. It returns false on the first step, where the
// caller leaves the form.
func (f *AdoptionForm) Prev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > StepHousing {
		f.step--
		return true
	}
	return false
}

// Submit validates and sends the application. Failures are exposed through
// SubmitError and returned.
func (f *AdoptionForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.submitting = true
	f.submitErr = ""
	req := f.data
	f.mu.Unlock()

	res, err := f.submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.submitErr = apiclient.Message(err, FallbackSubmit)
		f.logger.Error("failed to submit application",
			zap.String("pet_id", req.PetID),
			zap.Error(err),
		)
		return err
	}
	f.submitted = true
	f.applicationID = res.ApplicationID
	f.logger.Info("application submitted",
		zap.String("pet_id", req.PetID),
		zap.String("application_id", res.ApplicationID),
	)
	return nil
}

func (f *AdoptionForm) submit(ctx context.Context, req adoption.CreateApplication) (*adoption.SubmitResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.repo.SubmitApplication(ctx, req)
}

// SubmitError returns the message of the last failed submission, or "".
func (f *AdoptionForm) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Submitted reports whether the application was accepted and returns the
// id the backend assigned.
func (f *AdoptionForm) Submitted() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applicationID, f.submitted
}
