package staff

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff was not built through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("staff must be created via NewStaff constructor")

// Staff is a restaurant employee with a login. The username is allocated from the last
// name when the staff member is provisioned and never changes afterwards, even if the
// last name is later corrected.
type Staff struct {
	kernel.EventRecorder

	id        int
	firstName string
	lastName  string
	email     string
	username  kernel.Username
	status    Status
	hiredAt   *time.Time

	isConstructed bool
}

// Profile holds the editable fields supplied when provisioning a staff member.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	// Status defaults to Active.
	Status  Status
	HiredAt *time.Time
}

// NewStaff builds a staff member that has not been stored yet (ID is 0).
//
// Parameters:
//   - profile: names and email are required; status defaults to Active
//   - username: allocated by the identifier allocator from the last name
//   - now: provisioning time, carried by the staff.provisioned event
//
// Example:
//
//	u, _ := kernel.NewUsername("smith", 1)
//	s, err := staff.NewStaff(staff.Profile{FirstName: "Jo", LastName: "Smith", Email: "jo@x.io"}, u, time.Now())
func NewStaff(profile Profile, username kernel.Username, now time.Time) (*Staff, error) {
	s := &Staff{
		firstName:     strings.TrimSpace(profile.FirstName),
		lastName:      strings.TrimSpace(profile.LastName),
		email:         strings.TrimSpace(profile.Email),
		username:      username,
		status:        profile.Status,
		hiredAt:       profile.HiredAt,
		isConstructed: true,
	}
	if s.status == "" {
		s.status = Active
	}

	if err := errors.Join(
		username.Validate(),
		requireNonEmpty("firstName", s.firstName),
		requireNonEmpty("lastName", s.lastName),
		requireNonEmpty("email", s.email),
		validateStatus(s.status),
	); err != nil {
		return nil, err
	}

	s.RecordEvent(ProvisionedEvent{
		Username:  username.String(),
		FirstName: s.firstName,
		LastName:  s.lastName,
		Email:     s.email,
		Timestamp: now,
	})
	return s, nil
}

// State is the persisted state of a staff member.
type State struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Username  kernel.Username
	Status    Status
	HiredAt   *time.Time
}

// RestoreStaff rebuilds a stored staff member without recording events.
func RestoreStaff(state State) (*Staff, error) {
	if err := errors.Join(state.Username.Validate(), validateStatus(state.Status)); err != nil {
		return nil, err
	}
	return &Staff{
		id:            state.ID,
		firstName:     state.FirstName,
		lastName:      state.LastName,
		email:         state.Email,
		username:      state.Username,
		status:        state.Status,
		hiredAt:       state.HiredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the staff member was properly constructed.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// AssignID sets the storage key once the record has been inserted.
func (s *Staff) AssignID(id int) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("staff id", fmt.Errorf("already assigned: %d", s.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("staff id", fmt.Errorf("%d is not positive", id))
	}
	s.id = id
	return nil
}

func (s *Staff) ID() int { return s.id }
func (s *Staff) FirstName() string { return s.firstName }
func (s *Staff) LastName() string { return s.lastName }
func (s *Staff) Email() string { return s.email }
func (s *Staff) Username() kernel.Username { return s.username }
func (s *Staff) Status() Status { return s.status }
func (s *Staff) HiredAt() *time.Time { return s.hiredAt }

// Patch is a partial profile update. Only non-nil fields are applied.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Status    *Status
	HiredAt   *time.Time
}

// Update merges the non-nil fields of p. Nothing changes when any field is invalid.
func (s *Staff) Update(p Patch) error {
	var errList []error
	trimmed := func(param string, v *string) string {
		if v == nil {
			return ""
		}
		out := strings.TrimSpace(*v)
		errList = append(errList, requireNonEmpty(param, out))
		return out
	}
	firstName := trimmed("firstName", p.FirstName)
	lastName := trimmed("lastName", p.LastName)
	email := trimmed("email", p.Email)
	if p.Status != nil {
		errList = append(errList, validateStatus(*p.Status))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if p.FirstName != nil {
		s.firstName = firstName
	}
	if p.LastName != nil {
		s.lastName = lastName
	}
	if p.Email != nil {
		s.email = email
	}
	if p.Status != nil {
		s.status = *p.Status
	}
	if p.HiredAt != nil {
		hired := *p.HiredAt
		s.hiredAt = &hired
	}
	return nil
}

func validateStatus(s Status) error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is neither Active nor Inactive", string(s)))
	}
	return nil
}

func requireNonEmpty(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
