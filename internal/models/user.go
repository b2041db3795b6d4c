package models

type UserStatus string

const (
	StatusUser         UserStatus = "user"
	StatusAdminGroup   UserStatus = "admin_group"
	StatusAdminGeneral UserStatus = "admin_general"
)

// IsAdmin reports whether the status clears the admin gate.
func (s UserStatus) IsAdmin() bool {
	return s == StatusAdminGroup || s == StatusAdminGeneral
}

func (s UserStatus) Valid() bool {
	return s == StatusUser || s == StatusAdminGroup || s == StatusAdminGeneral
}

type User struct {
	Base

	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:user" json:"status"`
	CompanyID    *uint      `gorm:"index" json:"company_id"`

	// Relationships
	News        []News            `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Memberships []StructureMember `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

// UserFilter selects users by equality on its set fields.
type UserFilter struct {
	ID        *uint
	Email     *string
	CompanyID *uint
}

func (f UserFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.Email != nil {
		conds["email"] = *f.Email
	}
	if f.CompanyID != nil {
		conds["company_id"] = *f.CompanyID
	}
	return conds
}

// UserValues carries the profile columns an update may set.
type UserValues struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (v UserValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.FirstName != nil {
		values["first_name"] = *v.FirstName
	}
	if v.LastName != nil {
		values["last_name"] = *v.LastName
	}
	if v.Email != nil {
		values["email"] = *v.Email
	}
	return values
}

// UserStatusValues updates only the role column.
type UserStatusValues struct {
	Status UserStatus
}

func (v UserStatusValues) Assignments() map[string]any {
	return map[string]any{"status": v.Status}
}

// UserCompanyValues always writes company_id; a nil value clears the
// membership.
type UserCompanyValues struct {
	CompanyID *uint
}

func (v UserCompanyValues) Assignments() map[string]any {
	return map[string]any{"company_id": v.CompanyID}
}
