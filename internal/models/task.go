package models

import "time"

type TaskStatus string

const (
	TaskCreated TaskStatus = "created"
	TaskInWork  TaskStatus = "in_work"
	TaskDone    TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	return s == TaskCreated || s == TaskInWork || s == TaskDone
}

type Task struct {
	Base

	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"not null" json:"content"`
	AssignedBy uint       `gorm:"not null;index" json:"assigned_by"`
	AssignedTo uint       `gorm:"not null;index" json:"assigned_to"`
	Deadline   time.Time  `gorm:"not null" json:"deadline"`
	Comment    string     `json:"comment"`
	Status     TaskStatus `gorm:"type:varchar(20);not null;default:created" json:"status"`

	// Relationships
	Motivations []Motivation `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

type TaskFilter struct {
	ID         *uint
	Title      *string
	AssignedBy *uint
	AssignedTo *uint
	Status     *TaskStatus
}

func (f TaskFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.Title != nil {
		conds["title"] = *f.Title
	}
	if f.AssignedBy != nil {
		conds["assigned_by"] = *f.AssignedBy
	}
	if f.AssignedTo != nil {
		conds["assigned_to"] = *f.AssignedTo
	}
	if f.Status != nil {
		conds["status"] = *f.Status
	}
	return conds
}

type TaskValues struct {
	Title      *string
	Content    *string
	AssignedTo *uint
	Deadline   *time.Time
	Comment    *string
	Status     *TaskStatus
}

func (v TaskValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.Title != nil {
		values["title"] = *v.Title
	}
	if v.Content != nil {
		values["content"] = *v.Content
	}
	if v.AssignedTo != nil {
		values["assigned_to"] = *v.AssignedTo
	}
	if v.Deadline != nil {
		values["deadline"] = *v.Deadline
	}
	if v.Comment != nil {
		values["comment"] = *v.Comment
	}
	if v.Status != nil {
		values["status"] = *v.Status
	}
	return values
}
