package model

// slugは常にnameから導出（usecase側でslug.Makeする）。
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Slug string `gorm:"type:varchar(255);not null" json:"slug"`
}
