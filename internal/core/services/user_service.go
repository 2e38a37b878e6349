package services

import (
	"context"
	"errors"
	"log"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/adapters/persistence/repositories"
	"campushub/internal/core/domain"
	"campushub/internal/pkg/pagination"
	"campushub/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles user and profile management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserByAdminInput represents an admin user update
type UpdateUserByAdminInput struct {
	Role     *string `json:"role" validate:"omitempty,oneof=student organization faculty admin"`
	IsActive *bool   `json:"is_active"`
}

// UpdateProfileInput represents a self profile update
type UpdateProfileInput struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=2,max=120"`
	Branch    *string `json:"branch" validate:"omitempty,max=80"`
	Year      *int    `json:"year" validate:"omitempty,gte=1,lte=6"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url,max=255"`
}

// ChangePasswordInput represents a password change
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ListUsers lists all users with pagination (admin)
func (s *UserService) ListUsers(ctx context.Context, params *pagination.Params) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, total, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUserByAdmin changes a user's role or active flag (admin)
func (s *UserService) UpdateUserByAdmin(ctx context.Context, id uint, adminID uint, input *UpdateUserByAdminInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if id == adminID && input.Role != nil {
		return nil, domain.ErrCannotChangeOwnRole
	}
	if id == adminID && input.IsActive != nil && !*input.IsActive {
		return nil, domain.ErrCannotDeactivateSelf
	}

	updates := map[string]interface{}{}
	if input.Role != nil {
		role := domain.Role(*input.Role)
		if !role.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		updates["role"] = role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		return user.ToResponse(), nil
	}

	if err := s.userRepo.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	log.Printf("✅ User %d updated by admin %d", id, adminID)
	return s.GetUserByID(ctx, id)
}

// GetProfile gets own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile updates own profile details
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.UserResponse, error) {
	if _, err := s.userRepo.GetProfileByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Branch != nil {
		updates["branch"] = *input.Branch
	}
	if input.Year != nil {
		updates["year"] = *input.Year
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateProfile(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetUserByID(ctx, userID)
}

// ChangePassword changes the user's password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return domain.ErrOldPasswordWrong
	}

	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"password": hashedPassword})
}
