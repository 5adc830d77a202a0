package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRole is the job of a staff member.
type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleWaiter  StaffRole = "waiter"
	StaffRoleChef    StaffRole = "chef"
	StaffRoleCleaner StaffRole = "cleaner"
)

// StaffStatus is the employment status of a staff member.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// Staff is a restaurant employee record.
type Staff struct {
	ID        uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string      `json:"name" gorm:"size:255;not null"`
	Email     string      `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone     string      `json:"phone" gorm:"size:20"`
	Role      StaffRole   `json:"role" gorm:"type:varchar(20);not null"`
	Status    StaffStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt int64       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt int64       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName keeps the singular table name.
func (Staff) TableName() string {
	return "staff"
}

// BeforeCreate sets UUID before creating the record.
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
