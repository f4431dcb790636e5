package services

import (
	"context"
	"errors"

	"qsplan-backend/internal/auth"
	"qsplan-backend/internal/models"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

// ResetStore tracks open forgot-password requests.
type ResetStore interface {
	Create(ctx context.Context, username string) (*models.PasswordResetRequest, error)
	CountOpen(ctx context.Context) (int, error)
	ListOpen(ctx context.Context) ([]*models.PasswordResetRequest, error)
	ResolveForUsername(ctx context.Context, username string) error
}

// ManagerCounter reports projects without a matching manager account.
type ManagerCounter interface {
	CountUnknownManagers(ctx context.Context) (int, error)
}

type UserService struct {
	Repo       UserStore
	Resets     ResetStore
	Projects   ManagerCounter
	JWTManager *auth.JWTManager
}

func NewUserService(repo UserStore, resets ResetStore, projects ManagerCounter, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		Resets:     resets,
		Projects:   projects,
		JWTManager: jwtManager,
	}
}

// Register creates a new user account. Self-registered accounts get the
// manager role; an admin promotes them later if needed.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("name, username, and password are required")
	}

	existing, _ := s.Repo.GetByUsername(ctx, req.Username)
	if existing != nil {
		return nil, errors.New("user with this username already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         models.RoleManager,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns a JWT token plus the resolved
// permission set for the client to gate its UI on.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, errors.New("invalid username or password")
	}

	if !user.IsActive {
		return nil, errors.New("account suspended")
	}

	return s.authResponse(user)
}

func (s *UserService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:       token,
		User:        user,
		Permissions: models.PermissionsFor(user.Role),
	}, nil
}

// ForgotPassword files a reset request. Always succeeds from the caller's
// view so usernames cannot be probed.
func (s *UserService) ForgotPassword(ctx context.Context, username string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if _, err := s.Repo.GetByUsername(ctx, username); err != nil {
		// unknown account, swallow
		return nil
	}
	_, err := s.Resets.Create(ctx, username)
	return err
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// OpenPasswordResets returns the unresolved reset requests, oldest last.
func (s *UserService) OpenPasswordResets(ctx context.Context) ([]*models.PasswordResetRequest, error) {
	return s.Resets.ListOpen(ctx)
}

// UpdateUser applies an admin edit. Setting a password resolves any open
// reset requests for the account.
func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	// resets were filed under the name the user had when asking
	previousUsername := user.Username

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
		if err := s.Resets.ResolveForUsername(ctx, previousUsername); err != nil {
			return nil, err
		}
	} else {
		user.PasswordHash = ""
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a self-service edit to the acting user.
func (s *UserService) UpdateProfile(ctx context.Context, actor *models.User, req *models.UpdateProfileRequest) (*models.User, error) {
	if req.Name != "" {
		actor.Name = req.Name
	}

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		actor.PasswordHash = hashed
	} else {
		actor.PasswordHash = ""
	}

	if err := s.Repo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// NotificationCounts returns the badge counts polled by the client. Roles
// without the notification capability always see zeros.
func (s *UserService) NotificationCounts(ctx context.Context, role string) (*models.NotificationCounts, error) {
	if !models.PermissionsFor(role).CanSeeNotifications {
		return &models.NotificationCounts{}, nil
	}

	unknown, err := s.Projects.CountUnknownManagers(ctx)
	if err != nil {
		return nil, err
	}
	resets, err := s.Resets.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &models.NotificationCounts{
		UnknownManagers: unknown,
		PasswordResets:  resets,
	}, nil
}
