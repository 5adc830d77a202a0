package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// StaffInput carries staff fields. On update, empty fields are left as they are.
type StaffInput struct {
	Name   string
	Email  string
	Phone  string
	Role   model.StaffRole
	Status model.StaffStatus
}

// StaffService manages staff records.
type StaffService interface {
	Create(ctx context.Context, in StaffInput) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
	Update(ctx context.Context, id uuid.UUID, in StaffInput) (*model.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffService struct {
	staff repository.StaffRepository
}

// NewStaffService creates a new staff service.
func NewStaffService(staff repository.StaffRepository) StaffService {
	return &staffService{staff: staff}
}

func (s *staffService) Create(ctx context.Context, in StaffInput) (*model.Staff, error) {
	email := normalizeEmail(in.Email)
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StaffStatusActive
	}
	staff := &model.Staff{Name: in.Name, Email: email, Phone: in.Phone, Role: in.Role, Status: status}
	if err := s.staff.Create(ctx, staff); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.staff.List(ctx)
}

func (s *staffService) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStaffNotFound)
	}
	return staff, nil
}

func (s *staffService) Update(ctx context.Context, id uuid.UUID, in StaffInput) (*model.Staff, error) {
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		email := normalizeEmail(in.Email)
		if err := s.ensureEmailFree(ctx, email, staff.ID); err != nil {
			return nil, err
		}
		staff.Email = email
	}
	if in.Name != "" {
		staff.Name = in.Name
	}
	if in.Phone != "" {
		staff.Phone = in.Phone
	}
	if in.Role != "" {
		staff.Role = in.Role
	}
	if in.Status != "" {
		staff.Status = in.Status
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrStaffNotFound)
	}
	return nil
}

func (s *staffService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.staff.FindByEmail(ctx, email)
	if err == nil && existing.ID != self {
		return apperrors.ErrEmailExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("check staff email: %w", err)
	}
	return nil
}
