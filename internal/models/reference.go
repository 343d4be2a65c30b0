package models

// Position is seeded lookup data; players link to many of them.
type Position struct {
	Base
	Name string `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
}

// Category is seeded lookup data. MaxAge nil means unbounded.
type Category struct {
	Base
	Name   string `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
	MinAge int    `gorm:"not null" json:"min_age"`
	MaxAge *int   `json:"max_age"`
}
