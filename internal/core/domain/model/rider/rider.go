package rider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when a Rider was not built by NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Profile is what an applicant submits on the rider form.
type Profile struct {
	Name             string
	Phone            string
	Age              int
	Region           string
	District         string
	NationalID       string
	BikeBrand        string
	BikeRegistration string
}

// Rider is an aggregate root for a courier. Region is used to match riders to parcels.
type Rider struct {
	id         kernel.UUID
	email      kernel.Email
	profile    Profile
	status     Status
	workStatus string
	createdAt  time.Time
	version    int64
	guard      guard.ConstructorGuard
}

// NewRider creates a rider application. Applications always start pending,
// whatever status the applicant asked for.
func NewRider(id kernel.UUID, email kernel.Email, profile Profile, now time.Time) (*Rider, error) {
	r := &Rider{
		status:    StatusPending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setEmail(email),
		r.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Snapshot is the full persisted state of a rider.
type Snapshot struct {
	ID         kernel.UUID
	Email      kernel.Email
	Profile    Profile
	Status     Status
	WorkStatus string
	CreatedAt  time.Time
	Version    int64
}

// RestoreRider rebuilds a rider from storage.
func RestoreRider(s Snapshot) (*Rider, error) {
	r := &Rider{
		status:     s.Status,
		workStatus: s.WorkStatus,
		createdAt:  s.CreatedAt,
		version:    s.Version,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(s.ID),
		r.setEmail(s.Email),
		r.setProfile(s.Profile),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rider) Snapshot() Snapshot {
	return Snapshot{
		ID:         r.id,
		Email:      r.email,
		Profile:    r.profile,
		Status:     r.status,
		WorkStatus: r.workStatus,
		CreatedAt:  r.createdAt,
		Version:    r.version,
	}
}

func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) ID() kernel.UUID      { return r.id }
func (r *Rider) Email() kernel.Email  { return r.email }
func (r *Rider) Name() string         { return r.profile.Name }
func (r *Rider) Region() string       { return r.profile.Region }
func (r *Rider) Profile() Profile     { return r.profile }
func (r *Rider) Status() Status       { return r.status }
func (r *Rider) WorkStatus() string   { return r.workStatus }
func (r *Rider) CreatedAt() time.Time { return r.createdAt }
func (r *Rider) Version() int64       { return r.version }

// IsActive reports whether the rider has been approved.
func (r *Rider) IsActive() bool {
	return r.status == StatusActive
}

// Approve activates a pending rider. Approving an active rider is a conflict.
func (r *Rider) Approve() error {
	if r.status == StatusActive {
		return errs.NewConflictErrorWithCause(
			"rider is already active",
			fmt.Errorf("rider %s", r.id),
		)
	}
	r.status = StatusActive
	return nil
}

// MarkCollected records that the rider has picked up a parcel.
func (r *Rider) MarkCollected() error {
	if !r.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider",
			fmt.Errorf("rider %s is %s and cannot take parcels", r.id, r.status),
		)
	}
	r.workStatus = WorkStatusCollected
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	r.email = email
	return nil
}

func (r *Rider) setProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Region = strings.TrimSpace(p.Region)
	p.Phone = strings.TrimSpace(p.Phone)
	p.District = strings.TrimSpace(p.District)

	var ageErr error
	if p.Age < 0 {
		ageErr = errs.NewValueIsInvalidErrorWithCause("age", fmt.Errorf("%d is negative", p.Age))
	}

	var problems []error
	if p.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if p.Region == "" {
		problems = append(problems, errs.NewValueIsRequiredError("region"))
	}
	if err := errors.Join(append(problems, ageErr)...); err != nil {
		return err
	}
	r.profile = p
	return nil
}
