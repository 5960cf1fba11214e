// Package staffrepo persists staff members.
package staffrepo

import (
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/staff"
)

// StaffDTO is the row shape of staff.
type StaffDTO struct {
	ID        int `gorm:"column:staff_id;primaryKey"`
	FirstName string
	LastName  string
	Email     string
	Username  string
	Status    string
	HiredDate *time.Time `gorm:"type:date"`
}

// TableName keeps the singular table name.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(s *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:        s.ID(),
		FirstName: s.FirstName(),
		LastName:  s.LastName(),
		Email:     s.Email(),
		Username:  s.Username().String(),
		Status:    s.Status().String(),
		HiredDate: s.HiredAt(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	username, err := kernel.ParseUsername(dto.Username)
	if err != nil {
		return nil, err
	}
	status, err := staff.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(staff.State{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Username:  username,
		Status:    status,
		HiredAt:   dto.HiredDate,
	})
}
