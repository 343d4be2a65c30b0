package models

import "time"

type Foot string

const (
	FootRight Foot = "RIGHT"
	FootLeft  Foot = "LEFT"
	FootBoth  Foot = "BOTH"
)

type PlayerProfile struct {
	Base
	UserID          string              `gorm:"uniqueIndex;not null;type:varchar(36)" json:"user_id"`
	User            *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team            *string             `json:"team"`
	Zone            *string             `gorm:"index" json:"zone"`
	Bio             *string             `gorm:"type:text" json:"bio"`
	PreferredFoot   *Foot               `gorm:"type:varchar(8)" json:"preferred_foot"`
	Goals           int                 `gorm:"not null;default:0;check:chk_player_goals,goals >= 0" json:"goals"`
	Assists         int                 `gorm:"not null;default:0;check:chk_player_assists,assists >= 0" json:"assists"`
	MatchesPlayed   int                 `gorm:"not null;default:0;check:chk_player_matches,matches_played >= 0" json:"matches_played"`
	AvatarURL       *string             `json:"avatar_url"`
	ProfileVideoURL *string             `json:"profile_video_url"`
	CategoryID      *string             `gorm:"type:varchar(36);index" json:"category_id"`
	Category        *Category           `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Positions       []Position          `gorm:"many2many:player_positions" json:"positions"`
	SchoolID        *string             `gorm:"type:varchar(36);index" json:"school_id"`
	School          *SchoolProfile      `gorm:"foreignKey:SchoolID;constraint:OnDelete:SET NULL" json:"school,omitempty"`
	SchoolVerified  bool                `gorm:"not null;default:false" json:"school_verified"`
	Videos          []PlayerVideo       `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"videos"`
	Achievements    []PlayerAchievement `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"achievements"`
}

// PlayerPosition is the join row behind PlayerProfile.Positions.
type PlayerPosition struct {
	PlayerProfileID string `gorm:"primaryKey;type:varchar(36)"`
	PositionID      string `gorm:"primaryKey;type:varchar(36)"`
}

type PlayerVideo struct {
	Base
	PlayerID    string         `gorm:"index;not null;type:varchar(36)" json:"player_id"`
	Player      *PlayerProfile `gorm:"foreignKey:PlayerID" json:"-"`
	VideoURL    string         `gorm:"not null" json:"video_url"`
	Title       *string        `json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
}

type PlayerAchievement struct {
	Base
	PlayerID    string         `gorm:"index;not null;type:varchar(36)" json:"player_id"`
	Player      *PlayerProfile `gorm:"foreignKey:PlayerID" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Date        *time.Time     `json:"date"`
	Verified    bool           `gorm:"not null;default:false" json:"verified"`
}

// PositionNames lists the names of the linked positions.
func (p *PlayerProfile) PositionNames() []string {
	names := make([]string, 0, len(p.Positions))
	for _, pos := range p.Positions {
		names = append(names, pos.Name)
	}
	return names
}
