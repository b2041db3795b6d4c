package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errStructureNotFound = apperr.NotFound("structure not found")
	errStructureExists   = apperr.Conflict("a structure with this name already exists")
	errMemberNotFound    = apperr.NotFound("structure member not found")
)

// StructureMembers is the listing of one structure's seats.
type StructureMembers struct {
	StructureID uint                     `json:"structure_id"`
	Members     []models.StructureMember `json:"members"`
}

type StructureService struct {
	structures *repository.Repository[models.Structure]
	members    *repository.Repository[models.StructureMember]
	companies  *repository.Repository[models.Company]
}

func NewStructureService(database *gorm.DB) *StructureService {
	return &StructureService{
		structures: repository.New[models.Structure](database),
		members:    repository.New[models.StructureMember](database),
		companies:  repository.New[models.Company](database),
	}
}

func (s *StructureService) Create(ctx context.Context, name string, companyID uint) (*models.Structure, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errCompanyNotFound
	}

	structure := models.Structure{Name: name, CompanyID: companyID}
	if err := asConflict(s.structures.Insert(ctx, &structure), errStructureExists); err != nil {
		return nil, err
	}

	return &structure, nil
}

func (s *StructureService) Update(ctx context.Context, structureID uint, values models.StructureValues) error {
	rows, err := s.structures.Update(ctx, models.StructureFilter{ID: &structureID}, values)
	return guard(rows, asConflict(err, errStructureExists), errStructureNotFound)
}

func (s *StructureService) Delete(ctx context.Context, structureID uint) error {
	rows, err := s.structures.Delete(ctx, models.StructureFilter{ID: &structureID})
	return guard(rows, err, errStructureNotFound)
}

func (s *StructureService) Get(ctx context.Context, structureID uint) (*models.Structure, error) {
	structure, err := s.structures.FindByID(ctx, structureID)
	if err != nil {
		return nil, err
	}
	if structure == nil {
		return nil, errStructureNotFound
	}
	return structure, nil
}

func (s *StructureService) All(ctx context.Context) ([]models.Structure, error) {
	return s.structures.FindAll(ctx, nil)
}

// CreateMember seats a user in a structure. A manager reference is only
// checked for existence; nothing prevents manager cycles.
func (s *StructureService) CreateMember(ctx context.Context, member models.StructureMember) (*models.StructureMember, error) {
	structure, err := s.structures.FindByID(ctx, member.StructureID)
	if err != nil {
		return nil, err
	}
	if structure == nil {
		return nil, errStructureNotFound
	}

	if member.ManagerID != nil {
		manager, err := s.members.FindByID(ctx, *member.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, apperr.Validation("unknown manager id")
		}
	}

	if member.Role == "" {
		member.Role = models.RoleEmployee
	}
	if !member.Role.Valid() {
		return nil, apperr.Validation("unknown member role")
	}

	if err := s.members.Insert(ctx, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *StructureService) UpdateMember(ctx context.Context, memberID uint, values models.StructureMemberValues) error {
	if values.Role != nil && !values.Role.Valid() {
		return apperr.Validation("unknown member role")
	}

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return errMemberNotFound
	}

	rows, err := s.members.Update(ctx, models.StructureMemberFilter{ID: &memberID}, values)
	return guard(rows, err, errMemberNotFound)
}

func (s *StructureService) DeleteMember(ctx context.Context, memberID uint) error {
	rows, err := s.members.Delete(ctx, models.StructureMemberFilter{ID: &memberID})
	return guard(rows, err, errMemberNotFound)
}

func (s *StructureService) GetMember(ctx context.Context, memberID uint) (*models.StructureMember, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errMemberNotFound
	}
	return member, nil
}

// MembersOf lists the seats of one structure.
func (s *StructureService) MembersOf(ctx context.Context, structureID uint) (*StructureMembers, error) {
	structure, err := s.structures.FindByID(ctx, structureID)
	if err != nil {
		return nil, err
	}
	if structure == nil {
		return nil, errStructureNotFound
	}

	members, err := s.members.FindAll(ctx, models.StructureMemberFilter{StructureID: &structureID})
	if err != nil {
		return nil, err
	}

	return &StructureMembers{StructureID: structureID, Members: members}, nil
}

func (s *StructureService) AllMembers(ctx context.Context) ([]models.StructureMember, error) {
	return s.members.FindAll(ctx, nil)
}
