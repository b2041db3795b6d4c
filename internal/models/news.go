package models

type News struct {
	Base

	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
}

type NewsFilter struct {
	ID       *uint
	AuthorID *uint
}

func (f NewsFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.AuthorID != nil {
		conds["author_id"] = *f.AuthorID
	}
	return conds
}

type NewsValues struct {
	Title   *string
	Content *string
}

func (v NewsValues) Assignments() map[string]any {
	values := map[string]any{}
	if v.Title != nil {
		values["title"] = *v.Title
	}
	if v.Content != nil {
		values["content"] = *v.Content
	}
	return values
}
