package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errUserNotFound   = apperr.NotFound("user not found")
	errEmailTaken     = apperr.Conflict("a user with this email already exists")
	errBadCredentials = apperr.Validation("incorrect email or password")
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	CompanyID *uint
}

type UserService struct {
	users     *repository.Repository[models.User]
	companies *repository.Repository[models.Company]
}

func NewUserService(database *gorm.DB) *UserService {
	return &UserService{
		users:     repository.New[models.User](database),
		companies: repository.New[models.Company](database),
	}
}

// Register creates a new account. Email uniqueness is pre-checked for a
// clean error, but the unique index has the final say.
func (s *UserService) Register(ctx context.Context, input RegisterInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.FindOne(ctx, models.UserFilter{Email: &email})
	if err != nil {
		return err
	}
	if existing != nil {
		return errEmailTaken
	}

	if input.CompanyID != nil {
		company, err := s.companies.FindByID(ctx, *input.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return apperr.Validation("unknown company id")
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Status:       models.StatusUser,
		CompanyID:    input.CompanyID,
	}

	return asConflict(s.users.Insert(ctx, &user), errEmailTaken)
}

// Authenticate resolves a login attempt to a user. The same error covers
// an unknown email and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindOne(ctx, models.UserFilter{Email: &email})
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, errBadCredentials
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}
	return user, nil
}

func (s *UserService) AllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx, nil)
}

// UpdateUser applies only the set fields. A changed email must not belong
// to another user.
func (s *UserService) UpdateUser(ctx context.Context, userID uint, values models.UserValues) error {
	if values.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*values.Email))
		values.Email = &email

		existing, err := s.users.FindOne(ctx, models.UserFilter{Email: &email})
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != userID {
			return errEmailTaken
		}
	}

	rows, err := s.users.Update(ctx, models.UserFilter{ID: &userID}, values)
	return guard(rows, asConflict(err, errEmailTaken), errUserNotFound)
}

func (s *UserService) UpdateStatus(ctx context.Context, userID uint, status models.UserStatus) error {
	if !status.Valid() {
		return apperr.Validation("unknown user status")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errUserNotFound
	}

	rows, err := s.users.Update(ctx, models.UserFilter{ID: &userID}, models.UserStatusValues{Status: status})
	return guard(rows, err, errUserNotFound)
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errUserNotFound
	}

	rows, err := s.users.Delete(ctx, models.UserFilter{ID: &userID})
	return guard(rows, err, errUserNotFound)
}
