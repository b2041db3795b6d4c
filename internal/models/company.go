package models

type Company struct {
	Base

	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Relationships
	Users      []User      `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Structures []Structure `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

type CompanyFilter struct {
	ID   *uint
	Name *string
}

func (f CompanyFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.Name != nil {
		conds["name"] = *f.Name
	}
	return conds
}

type CompanyValues struct {
	Name *string
}

func (v CompanyValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.Name != nil {
		values["name"] = *v.Name
	}
	return values
}
