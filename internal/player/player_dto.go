package player

import (
	"strings"
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
)

const defaultVideoTitle = "Video sin título"

// UpdateProfileInput is the self-service profile form. The player resubmits
// the whole form, so absent or blank text fields are stored as NULL. Absent
// stats keep their value. PositionIDs nil leaves positions alone; an empty
// slice clears them.
type UpdateProfileInput struct {
	Team            *string   `json:"team" binding:"omitempty,max=100"`
	Zone            *string   `json:"zone" binding:"omitempty,max=100"`
	Bio             *string   `json:"bio" binding:"omitempty,max=500"`
	PreferredFoot   *string   `json:"preferred_foot" binding:"omitempty,len=0|oneof=RIGHT LEFT BOTH"`
	CategoryID      *string   `json:"category_id"`
	Goals           *int      `json:"goals" binding:"omitempty,gte=0"`
	Assists         *int      `json:"assists" binding:"omitempty,gte=0"`
	MatchesPlayed   *int      `json:"matches_played" binding:"omitempty,gte=0"`
	AvatarURL       *string   `json:"avatar_url" binding:"omitempty,len=0|url"`
	ProfileVideoURL *string   `json:"profile_video_url" binding:"omitempty,len=0|url"`
	PositionIDs     *[]string `json:"position_ids"`
}

func footOrNil(s *string) *models.Foot {
	v := models.NullIfEmpty(s)
	if v == nil {
		return nil
	}
	f := models.Foot(*v)
	return &f
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// newProfile builds the row for a player that has no profile yet.
func (in UpdateProfileInput) newProfile(userID string) *models.PlayerProfile {
	return &models.PlayerProfile{
		UserID:          userID,
		Team:            models.NullIfEmpty(in.Team),
		Zone:            models.NullIfEmpty(in.Zone),
		Bio:             models.NullIfEmpty(in.Bio),
		PreferredFoot:   footOrNil(in.PreferredFoot),
		CategoryID:      models.NullIfEmpty(in.CategoryID),
		Goals:           intOr(in.Goals, 0),
		Assists:         intOr(in.Assists, 0),
		MatchesPlayed:   intOr(in.MatchesPlayed, 0),
		AvatarURL:       models.NullIfEmpty(in.AvatarURL),
		ProfileVideoURL: models.NullIfEmpty(in.ProfileVideoURL),
	}
}

// updateFields maps the form onto column updates for an existing profile.
func (in UpdateProfileInput) updateFields() map[string]interface{} {
	fields := map[string]interface{}{
		"team":              models.NullIfEmpty(in.Team),
		"zone":              models.NullIfEmpty(in.Zone),
		"bio":               models.NullIfEmpty(in.Bio),
		"preferred_foot":    footOrNil(in.PreferredFoot),
		"category_id":       models.NullIfEmpty(in.CategoryID),
		"avatar_url":        models.NullIfEmpty(in.AvatarURL),
		"profile_video_url": models.NullIfEmpty(in.ProfileVideoURL),
	}
	if in.Goals != nil {
		fields["goals"] = *in.Goals
	}
	if in.Assists != nil {
		fields["assists"] = *in.Assists
	}
	if in.MatchesPlayed != nil {
		fields["matches_played"] = *in.MatchesPlayed
	}
	return fields
}

type MediaURLInput struct {
	URL string `json:"url" binding:"required,url"`
}

type CreateVideoInput struct {
	VideoURL    string  `json:"video_url" binding:"required,url"`
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=300"`
}

// UpdateVideoInput patches a video; nil fields are left unchanged.
type UpdateVideoInput struct {
	VideoURL    *string `json:"video_url" binding:"omitempty,url"`
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=300"`
}

func (in UpdateVideoInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.VideoURL != nil {
		fields["video_url"] = strings.TrimSpace(*in.VideoURL)
	}
	if in.Title != nil {
		fields["title"] = models.NullIfEmpty(in.Title)
	}
	if in.Description != nil {
		fields["description"] = models.NullIfEmpty(in.Description)
	}
	return fields
}

// AchievementInput carries the self-service fields. Verified is not among
// them: only a trusted party sets it.
type AchievementInput struct {
	Title       string     `json:"title" binding:"required,min=1,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=300"`
	Date        *time.Time `json:"date"`
}

// fields always sets the title; description and date change only when sent.
func (in AchievementInput) fields() map[string]interface{} {
	fields := map[string]interface{}{"title": strings.TrimSpace(in.Title)}
	if in.Description != nil {
		fields["description"] = models.NullIfEmpty(in.Description)
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	return fields
}
