package models

// Motivation is the rating given for a finished task. One per task,
// enforced at the service level.
type Motivation struct {
	Base

	TaskID  uint   `gorm:"not null;index" json:"task_id"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`
}

type MotivationFilter struct {
	ID     *uint
	TaskID *uint
}

func (f MotivationFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.TaskID != nil {
		conds["task_id"] = *f.TaskID
	}
	return conds
}

type MotivationValues struct {
	Rating  *int
	Comment *string
}

func (v MotivationValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.Rating != nil {
		values["rating"] = *v.Rating
	}
	if v.Comment != nil {
		values["comment"] = *v.Comment
	}
	return values
}
