package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepository user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepository: userRepository}
}

func (s *UserServiceImpl) checkUnique(ctx context.Context, username string, email string) error {
	if _, err := s.userRepository.GetByUsername(ctx, username); err == nil {
		return user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepository.GetByEmail(ctx, email); err == nil {
		return user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	return nil
}

// RegisterAdmin implements user.UserService.
func (s *UserServiceImpl) RegisterAdmin(ctx context.Context, req user.RegisterAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.checkUnique(ctx, req.Username, req.Email); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	passwordHash := string(hash)
	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        &req.Phone,
		PasswordHash: &passwordHash,
		Role:         user.RoleAdmin,
		Latitude:     &req.Latitude,
		Longitude:    &req.Longitude,
		RadiusMeters: &req.RadiusMeters,
	}

	created, err := s.userRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// RegisterStaff implements user.UserService.
func (s *UserServiceImpl) RegisterStaff(ctx context.Context, adminID string, req user.RegisterStaffRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	admin, err := s.userRepository.GetByID(ctx, adminID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !admin.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminRequired
	}

	if err := s.checkUnique(ctx, req.Username, req.Email); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	passwordHash := string(hash)
	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        &req.Phone,
		PasswordHash: &passwordHash,
		Role:         user.RoleStaff,
		AdminID:      &admin.ID,
	}

	created, err := s.userRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// ListAdmins implements user.UserService.
func (s *UserServiceImpl) ListAdmins(ctx context.Context) ([]user.UserResponse, error) {
	admins, err := s.userRepository.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, user.ToResponse(a))
	}
	return responses, nil
}

// ListStaff implements user.UserService.
func (s *UserServiceImpl) ListStaff(ctx context.Context, adminID string) ([]user.UserResponse, error) {
	staff, err := s.userRepository.ListStaffByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(staff))
	for _, st := range staff {
		responses = append(responses, user.ToResponse(st))
	}
	return responses, nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}
