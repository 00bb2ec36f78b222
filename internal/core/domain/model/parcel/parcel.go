package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built by NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Details is the descriptive part of a parcel supplied by the sender.
type Details struct {
	Title           string
	Type            string
	WeightKg        float64
	SenderName      string
	SenderRegion    string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	ReceiverRegion  string
}

// Parcel is the aggregate root for a shipment, tracked from creation through
// settlement of the rider's earning.
//
// Invariants:
//   - payment status becomes paid at most once, together with a transaction id
//   - delivery status only moves forward
//   - delivered_at is set iff delivery status is delivered
//   - cash-out happens at most once and only after delivery by the assigned rider
type Parcel struct {
	id         kernel.UUID
	trackingID string
	sender     kernel.Email
	details    Details
	cost       kernel.Money

	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus
	transactionID  string

	riderName  string
	riderEmail kernel.Email

	createdAt   time.Time
	transitAt   *time.Time
	deliveredAt *time.Time
	cashOut     bool

	// version is the optimistic concurrency guard loaded from storage.
	version int64

	events []Event
	guard  guard.ConstructorGuard
}

// NewTrackingID returns a short human readable tracking reference.
func NewTrackingID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "QD-" + strings.ToUpper(raw[:10])
}

// NewParcel creates an unpaid, undelivered parcel owned by sender.
func NewParcel(
	id kernel.UUID,
	trackingID string,
	sender kernel.Email,
	details Details,
	cost kernel.Money,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		paymentStatus:  Unpaid,
		deliveryStatus: NotDelivered,
		createdAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setSender(sender),
		p.setDetails(details),
		p.setCost(cost),
	); err != nil {
		return nil, err
	}

	p.record(EventCreated, p.createdAt)
	return p, nil
}

// Snapshot is the full persisted state of a parcel.
type Snapshot struct {
	ID             kernel.UUID
	TrackingID     string
	Sender         kernel.Email
	Details        Details
	Cost           kernel.Money
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	TransactionID  string
	RiderName      string
	RiderEmail     kernel.Email
	CreatedAt      time.Time
	TransitAt      *time.Time
	DeliveredAt    *time.Time
	CashOut        bool
	Version        int64
}

// RestoreParcel rebuilds a parcel from storage, re-checking the cross-field invariants.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	p := &Parcel{
		paymentStatus:  s.PaymentStatus,
		deliveryStatus: s.DeliveryStatus,
		transactionID:  s.TransactionID,
		riderName:      s.RiderName,
		riderEmail:     s.RiderEmail,
		createdAt:      s.CreatedAt,
		transitAt:      s.TransitAt,
		deliveredAt:    s.DeliveredAt,
		cashOut:        s.CashOut,
		version:        s.Version,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setTrackingID(s.TrackingID),
		p.setSender(s.Sender),
		p.setDetails(s.Details),
		p.setCost(s.Cost),
		s.PaymentStatus.Validate(),
		s.DeliveryStatus.Validate(),
		p.validateState(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot returns the state to persist.
func (p *Parcel) Snapshot() Snapshot {
	return Snapshot{
		ID:             p.id,
		TrackingID:     p.trackingID,
		Sender:         p.sender,
		Details:        p.details,
		Cost:           p.cost,
		PaymentStatus:  p.paymentStatus,
		DeliveryStatus: p.deliveryStatus,
		TransactionID:  p.transactionID,
		RiderName:      p.riderName,
		RiderEmail:     p.riderEmail,
		CreatedAt:      p.createdAt,
		TransitAt:      p.transitAt,
		DeliveredAt:    p.deliveredAt,
		CashOut:        p.cashOut,
		Version:        p.version,
	}
}

// Validate ensures the parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) ID() kernel.UUID                { return p.id }
func (p *Parcel) TrackingID() string             { return p.trackingID }
func (p *Parcel) Sender() kernel.Email           { return p.sender }
func (p *Parcel) Details() Details               { return p.details }
func (p *Parcel) Cost() kernel.Money             { return p.cost }
func (p *Parcel) PaymentStatus() PaymentStatus   { return p.paymentStatus }
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }
func (p *Parcel) TransactionID() string          { return p.transactionID }
func (p *Parcel) RiderName() string              { return p.riderName }
func (p *Parcel) RiderEmail() kernel.Email       { return p.riderEmail }
func (p *Parcel) TransitAt() *time.Time          { return p.transitAt }
func (p *Parcel) DeliveredAt() *time.Time        { return p.deliveredAt }
func (p *Parcel) IsCashedOut() bool              { return p.cashOut }
func (p *Parcel) Version() int64                 { return p.version }

// IsAssignedTo reports whether rider is the parcel's assigned rider.
func (p *Parcel) IsAssignedTo(rider kernel.Email) bool {
	return !p.riderEmail.IsZero() && p.riderEmail.IsEqual(rider)
}

// MarkPaid flips the parcel to paid and records the processor's transaction id.
//
// Repeating the call with the transaction id already on record changes nothing
// and returns changed=false. A different transaction id on a paid parcel is a
// ConflictError: the parcel must never be charged twice.
func (p *Parcel) MarkPaid(transactionID string, now time.Time) (bool, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return false, errs.NewValueIsRequiredError("transactionId")
	}

	if p.paymentStatus == Paid {
		if p.transactionID == transactionID {
			return false, nil
		}
		return false, errs.NewConflictErrorWithCause(
			"parcel is already paid",
			fmt.Errorf("transaction %s is on record", p.transactionID),
		)
	}

	p.paymentStatus = Paid
	p.transactionID = transactionID
	p.record(EventPaid, now.UTC())
	return true, nil
}

// AssignRider moves a paid, waiting parcel to rider_assigned.
func (p *Parcel) AssignRider(riderName string, riderEmail kernel.Email, now time.Time) error {
	riderName = strings.TrimSpace(riderName)
	if err := errors.Join(
		requireText("riderName", riderName),
		riderEmail.Validate(),
	); err != nil {
		return err
	}
	if p.paymentStatus != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcel",
			fmt.Errorf("parcel %s is %s and cannot be dispatched", p.id, p.paymentStatus),
		)
	}

	next, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.deliveryStatus = next
	p.riderName = riderName
	p.riderEmail = riderEmail
	p.record(EventAssigned, now.UTC())
	return nil
}

// AdvanceDelivery applies a rider's status update. in_transit stamps transit_at,
// delivered stamps delivered_at.
func (p *Parcel) AdvanceDelivery(target DeliveryStatus, now time.Time) error {
	next, err := p.deliveryStatus.Advance(target)
	if err != nil {
		return err
	}

	at := now.UTC()
	p.deliveryStatus = next
	switch next { //nolint:exhaustive // Advance only yields these two
	case InTransit:
		p.transitAt = &at
		p.record(EventInTransit, at)
	case Delivered:
		p.deliveredAt = &at
		p.record(EventDelivered, at)
	}
	return nil
}

// CashOut settles the rider's earning for this parcel.
func (p *Parcel) CashOut(rider kernel.Email, now time.Time) error {
	if p.cashOut {
		return errs.NewConflictErrorWithCause(
			"parcel is already cashed out",
			fmt.Errorf("parcel %s", p.id),
		)
	}
	if !p.IsAssignedTo(rider) {
		return errs.NewForbiddenError("parcel is not assigned to " + rider.String())
	}
	if p.deliveryStatus != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcel",
			fmt.Errorf("parcel %s is %s, only delivered parcels can be cashed out", p.id, p.deliveryStatus),
		)
	}

	p.cashOut = true
	p.record(EventCashedOut, now.UTC())
	return nil
}

func (p *Parcel) validateState() error {
	var problems []error
	if (p.paymentStatus == Paid) != (p.transactionID != "") {
		problems = append(problems, errors.New("transaction id must be set iff the parcel is paid"))
	}
	if (p.deliveryStatus == Delivered) != (p.deliveredAt != nil) {
		problems = append(problems, errors.New("delivered_at must be set iff the parcel is delivered"))
	}
	if p.deliveryStatus != NotDelivered && p.riderEmail.IsZero() {
		problems = append(problems, errors.New("an assigned parcel must carry a rider"))
	}
	if p.cashOut && p.riderEmail.IsZero() {
		problems = append(problems, errors.New("only an assigned parcel can be cashed out"))
	}
	if len(problems) == 0 {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("parcel state", errors.Join(problems...))
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID string) error {
	trackingID = strings.TrimSpace(trackingID)
	if err := requireText("trackingId", trackingID); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setSender(sender kernel.Email) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	d.ReceiverName = strings.TrimSpace(d.ReceiverName)
	d.ReceiverRegion = strings.TrimSpace(d.ReceiverRegion)

	var weightErr error
	if d.WeightKg < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is negative", d.WeightKg))
	}

	if err := errors.Join(
		requireText("title", d.Title),
		requireText("receiverName", d.ReceiverName),
		requireText("receiverRegion", d.ReceiverRegion),
		weightErr,
	); err != nil {
		return err
	}
	p.details = d
	return nil
}

func (p *Parcel) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	p.cost = cost
	return nil
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
