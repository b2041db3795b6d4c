package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
)

func seedStructure(t *testing.T, companies *CompanyService, structures *StructureService) *models.Structure {
	t.Helper()
	ctx := context.Background()

	company, err := companies.Create(ctx, "acme")
	require.NoError(t, err)

	structure, err := structures.Create(ctx, "engineering", company.ID)
	require.NoError(t, err)
	return structure
}

func TestStructureCreateRequiresCompany(t *testing.T) {
	service := NewStructureService(userServiceDB(t))

	_, err := service.Create(context.Background(), "engineering", 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStructureCreateDuplicateName(t *testing.T) {
	database := userServiceDB(t)
	companies := NewCompanyService(database)
	structures := NewStructureService(database)
	ctx := context.Background()

	structure := seedStructure(t, companies, structures)

	_, err := structures.Create(ctx, structure.Name, structure.CompanyID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestStructureMemberLifecycle(t *testing.T) {
	database := userServiceDB(t)
	companies := NewCompanyService(database)
	structures := NewStructureService(database)
	ctx := context.Background()

	structure := seedStructure(t, companies, structures)

	// Role defaults to employee when left empty.
	manager, err := structures.CreateMember(ctx, models.StructureMember{StructureID: structure.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, manager.Role)

	role := models.RoleManager
	require.NoError(t, structures.UpdateMember(ctx, manager.ID, models.StructureMemberValues{Role: &role}))

	subordinate, err := structures.CreateMember(ctx, models.StructureMember{
		StructureID: structure.ID,
		ManagerID:   &manager.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, subordinate.ManagerID)

	listing, err := structures.MembersOf(ctx, structure.ID)
	require.NoError(t, err)
	assert.Equal(t, structure.ID, listing.StructureID)
	assert.Len(t, listing.Members, 2)

	require.NoError(t, structures.DeleteMember(ctx, subordinate.ID))

	_, err = structures.GetMember(ctx, subordinate.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStructureMemberValidation(t *testing.T) {
	database := userServiceDB(t)
	companies := NewCompanyService(database)
	structures := NewStructureService(database)
	ctx := context.Background()

	structure := seedStructure(t, companies, structures)

	_, err := structures.CreateMember(ctx, models.StructureMember{StructureID: 9999})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	missing := uint(9999)
	_, err = structures.CreateMember(ctx, models.StructureMember{
		StructureID: structure.ID,
		ManagerID:   &missing,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = structures.CreateMember(ctx, models.StructureMember{
		StructureID: structure.ID,
		Role:        models.MemberRole("intern"),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
