package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errCompanyNotFound = apperr.NotFound("company not found")
	errCompanyExists   = apperr.Conflict("a company with this name already exists")
)

type CompanyService struct {
	companies *repository.Repository[models.Company]
	users     *repository.Repository[models.User]
}

func NewCompanyService(database *gorm.DB) *CompanyService {
	return &CompanyService{
		companies: repository.New[models.Company](database),
		users:     repository.New[models.User](database),
	}
}

func (s *CompanyService) Create(ctx context.Context, name string) (*models.Company, error) {
	existing, err := s.companies.FindOne(ctx, models.CompanyFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errCompanyExists
	}

	company := models.Company{Name: name}
	if err := asConflict(s.companies.Insert(ctx, &company), errCompanyExists); err != nil {
		return nil, err
	}

	return &company, nil
}

func (s *CompanyService) Update(ctx context.Context, companyID uint, values models.CompanyValues) error {
	rows, err := s.companies.Update(ctx, models.CompanyFilter{ID: &companyID}, values)
	return guard(rows, asConflict(err, errCompanyExists), errCompanyNotFound)
}

// Delete removes the company; dependent structures go with it via the
// cascade.
func (s *CompanyService) Delete(ctx context.Context, companyID uint) error {
	rows, err := s.companies.Delete(ctx, models.CompanyFilter{ID: &companyID})
	return guard(rows, err, errCompanyNotFound)
}

func (s *CompanyService) Get(ctx context.Context, companyID uint) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errCompanyNotFound
	}
	return company, nil
}

func (s *CompanyService) All(ctx context.Context) ([]models.Company, error) {
	return s.companies.FindAll(ctx, nil)
}

func (s *CompanyService) AddUser(ctx context.Context, userID, companyID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errUserNotFound
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return errCompanyNotFound
	}

	rows, err := s.users.Update(ctx, models.UserFilter{ID: &userID}, models.UserCompanyValues{CompanyID: &companyID})
	return guard(rows, err, errUserNotFound)
}

// RemoveUser clears the user's company membership.
func (s *CompanyService) RemoveUser(ctx context.Context, userID uint) error {
	rows, err := s.users.Update(ctx, models.UserFilter{ID: &userID}, models.UserCompanyValues{CompanyID: nil})
	return guard(rows, err, errUserNotFound)
}
