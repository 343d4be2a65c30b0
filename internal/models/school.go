package models

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type SchoolProfile struct {
	Base
	UserID             string          `gorm:"uniqueIndex;not null;type:varchar(36)" json:"user_id"`
	User               *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OfficialName       *string         `json:"official_name"`
	NIT                *string         `gorm:"column:nit;type:varchar(50)" json:"nit"`
	Description        *string         `gorm:"type:text" json:"description"`
	Mission            *string         `gorm:"type:text" json:"mission"`
	Vision             *string         `gorm:"type:text" json:"vision"`
	LogoURL            *string         `json:"logo_url"`
	Department         *string         `gorm:"type:varchar(100);index" json:"department"`
	City               *string         `gorm:"type:varchar(100);index" json:"city"`
	Address            *string         `gorm:"type:varchar(200)" json:"address"`
	Phone              *string         `gorm:"type:varchar(20)" json:"phone"`
	ContactEmail       *string         `json:"contact_email"`
	FacebookURL        *string         `json:"facebook_url"`
	InstagramURL       *string         `json:"instagram_url"`
	WebsiteURL         *string         `json:"website_url"`
	ApproximatePlayers *int            `gorm:"check:chk_school_approx_players,approximate_players >= 0" json:"approximate_players"`
	HeadCoachName      *string         `gorm:"type:varchar(100)" json:"head_coach_name"`
	Achievements       *string         `gorm:"type:text" json:"achievements"`
	Categories         []Category      `gorm:"many2many:school_categories" json:"categories"`
	Players            []PlayerProfile `gorm:"foreignKey:SchoolID" json:"-"`
	Posts              []SchoolPost    `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`
}

// SchoolCategory is the join row behind SchoolProfile.Categories.
type SchoolCategory struct {
	SchoolProfileID string `gorm:"primaryKey;type:varchar(36)"`
	CategoryID      string `gorm:"primaryKey;type:varchar(36)"`
}

type SchoolPost struct {
	Base
	SchoolID    string         `gorm:"index;not null;type:varchar(36)" json:"school_id"`
	School      *SchoolProfile `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	MediaURL    *string        `json:"media_url"`
	MediaType   *MediaType     `gorm:"type:varchar(8)" json:"media_type"`
}
