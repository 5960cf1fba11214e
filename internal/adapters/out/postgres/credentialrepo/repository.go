package credentialrepo

import (
	"context"
	"errors"

	"tastyfood/internal/adapters/out/postgres/pgerr"
	"tastyfood/internal/core/domain/model/credential"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCredentialRepository implements ports.CredentialRepository using GORM.
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GORM credential repository.
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Add inserts a credential. A taken username is reported as a conflict on "username".
func (r *GormCredentialRepository) Add(ctx context.Context, aggregate *credential.Credential) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, map[string]any{"username": dto.Username})
	}
	return nil
}

// Update stores a changed password hash and first-login flag.
func (r *GormCredentialRepository) Update(ctx context.Context, aggregate *credential.Credential) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CredentialDTO{}).
		Where("username = ?", dto.Username).
		Updates(map[string]any{
			"password":         dto.Password,
			"first_time_login": dto.FirstTimeLogin,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("username", dto.Username)
	}
	return nil
}

// Get retrieves a credential by username and locks its row for the rest of the
// surrounding transaction.
func (r *GormCredentialRepository) Get(ctx context.Context, username string) (*credential.Credential, error) {
	var dto CredentialDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// UsernamesWithPrefix returns every credential username that starts with prefix,
// including accounts that have no staff record.
func (r *GormCredentialRepository) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	usernames := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&CredentialDTO{}).
		Where("starts_with(username, ?)", prefix).
		Order("username").
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}
