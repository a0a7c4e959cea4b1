package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/domain/staff"
	"eventease-admin/internal/pkg/jwt"
	"eventease-admin/internal/pkg/password"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errors.New("staff not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
	ErrWeakPassword         = errors.New("new password does not meet requirements")
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.StaffRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.StaffRM, error)
	PasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *readmodel.StaffRM, error)
	ChangePassword(ctx context.Context, staffID uuid.UUID, currentPassword, newPassword string) error
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.StaffRM, error)
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *readmodel.StaffRM, error) {
	staffRM, hashedPassword, err := a.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		// Not-found collapses into the generic credential error on purpose.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := staff.NewRole(staffRM.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(staffRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, staffRM, nil
}

func (a *authUseCaseImpl) ChangePassword(ctx context.Context, staffID uuid.UUID, currentPassword, newPassword string) error {
	hash, err := a.staffRepo.PasswordHash(ctx, staffID)
	if err != nil {
		return ErrStaffNotFound
	}

	if err := password.ComparePassword(hash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	newHash, err := password.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return a.staffRepo.UpdatePassword(ctx, staffID, newHash)
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.StaffRM, error) {
	staffRM, err := a.staffRepo.FindByID(ctx, staffID)
	if err != nil || staffRM == nil {
		return nil, ErrStaffNotFound
	}
	return staffRM, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.StaffID, role, nil
}
