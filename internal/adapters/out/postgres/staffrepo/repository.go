package staffrepo

import (
	"context"
	"errors"
	"strings"

	"tastyfood/internal/adapters/out/postgres/pgerr"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a staff member and assigns the generated key to the aggregate.
func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, conflictValues(dto))
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves the profile of an existing staff member. The username is never rewritten.
func (r *GormStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("staff_id = ?", dto.ID).
		Updates(map[string]any{
			"first_name": dto.FirstName,
			"last_name":  dto.LastName,
			"email":      dto.Email,
			"status":     dto.Status,
			"hired_date": dto.HiredDate,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, conflictValues(dto))
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves a staff member by key.
func (r *GormStaffRepository) Get(ctx context.Context, id int) (*staff.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmail reports whether a staff member other than excludeID uses email.
func (r *GormStaffRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	query := r.db.WithContext(ctx).Model(&StaffDTO{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("staff_id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByName reports whether the first and last name pair is already used.
func (r *GormStaffRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// usernameLockClass namespaces the per-prefix advisory locks of username allocation.
const usernameLockClass = 0x7f02

// LockUsernames takes a transaction scoped advisory lock on allocating usernames
// with prefix. Provisionings with different prefixes do not wait on each other.
func (r *GormStaffRepository) LockUsernames(ctx context.Context, prefix string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?::int, hashtext(?))", usernameLockClass, prefix).Error
}

// UsernamesWithPrefix returns every stored username that starts with prefix.
func (r *GormStaffRepository) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	usernames := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("username LIKE ?", escapeLike(prefix)+"%").
		Order("username").
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}

func conflictValues(dto StaffDTO) map[string]any {
	return map[string]any{
		"email":    dto.Email,
		"username": dto.Username,
		"name":     dto.FirstName + " " + dto.LastName,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
