package models

type MemberRole string

const (
	RoleAdmin    MemberRole = "admin"
	RoleManager  MemberRole = "manager"
	RoleEmployee MemberRole = "employee"
)

func (r MemberRole) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

type Structure struct {
	Base

	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	CompanyID uint   `gorm:"not null;index" json:"company_id"`

	// Relationships
	Members []StructureMember `gorm:"foreignKey:StructureID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// StructureMember is one user's seat inside a structure. ManagerID points
// at another member of the same structure; cycles are not checked.
type StructureMember struct {
	Base

	UserID      *uint      `gorm:"index" json:"user_id"`
	StructureID uint       `gorm:"not null;index" json:"structure_id"`
	ManagerID   *uint      `gorm:"index" json:"manager_id"`
	Role        MemberRole `gorm:"type:varchar(20);not null;default:employee" json:"role"`

	// Relationships
	Subordinates []StructureMember `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

type StructureFilter struct {
	ID        *uint
	Name      *string
	CompanyID *uint
}

func (f StructureFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.Name != nil {
		conds["name"] = *f.Name
	}
	if f.CompanyID != nil {
		conds["company_id"] = *f.CompanyID
	}
	return conds
}

type StructureValues struct {
	Name      *string
	CompanyID *uint
}

func (v StructureValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.Name != nil {
		values["name"] = *v.Name
	}
	if v.CompanyID != nil {
		values["company_id"] = *v.CompanyID
	}
	return values
}

type StructureMemberFilter struct {
	ID          *uint
	UserID      *uint
	StructureID *uint
	ManagerID   *uint
}

func (f StructureMemberFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.UserID != nil {
		conds["user_id"] = *f.UserID
	}
	if f.StructureID != nil {
		conds["structure_id"] = *f.StructureID
	}
	if f.ManagerID != nil {
		conds["manager_id"] = *f.ManagerID
	}
	return conds
}

type StructureMemberValues struct {
	UserID      *uint
	StructureID *uint
	ManagerID   *uint
	Role        *MemberRole
}

func (v StructureMemberValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.UserID != nil {
		values["user_id"] = *v.UserID
	}
	if v.StructureID != nil {
		values["structure_id"] = *v.StructureID
	}
	if v.ManagerID != nil {
		values["manager_id"] = *v.ManagerID
	}
	if v.Role != nil {
		values["role"] = *v.Role
	}
	return values
}
