package models

import "time"

type Meeting struct {
	Base

	OrganisationBy uint      `gorm:"not null" json:"organisation_by"`
	StartAt        time.Time `gorm:"not null" json:"start_at"`
	EndAt          time.Time `gorm:"not null" json:"end_at"`

	// Relationships
	Participants []Participant `gorm:"many2many:meeting_participants" json:"-"`
}

type Participant struct {
	Base

	UserID uint `gorm:"not null;index" json:"user_id"`

	// Relationships
	Meetings []Meeting `gorm:"many2many:meeting_participants" json:"-"`
}

type MeetingFilter struct {
	ID             *uint
	OrganisationBy *uint
}

func (f MeetingFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.OrganisationBy != nil {
		conds["organisation_by"] = *f.OrganisationBy
	}
	return conds
}

type MeetingValues struct {
	OrganisationBy *uint
	StartAt        *time.Time
	EndAt          *time.Time
}

func (v MeetingValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.OrganisationBy != nil {
		values["organisation_by"] = *v.OrganisationBy
	}
	if v.StartAt != nil {
		values["start_at"] = *v.StartAt
	}
	if v.EndAt != nil {
		values["end_at"] = *v.EndAt
	}
	return values
}

type ParticipantFilter struct {
	ID     *uint
	UserID *uint
}

func (f ParticipantFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.UserID != nil {
		conds["user_id"] = *f.UserID
	}
	return conds
}
