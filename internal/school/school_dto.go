package school

import (
	"strings"

	"github.com/Valentina9990/top-talent/internal/models"
)

// UpdateProfileInput patches the school profile. A nil field is left
// unchanged and an explicit "" clears the column. CategoryIDs nil leaves the
// categories alone; an empty slice clears them.
type UpdateProfileInput struct {
	OfficialName       *string   `json:"official_name" binding:"omitempty,max=200"`
	NIT                *string   `json:"nit" binding:"omitempty,max=50"`
	Description        *string   `json:"description" binding:"omitempty,max=1000"`
	Mission            *string   `json:"mission" binding:"omitempty,max=500"`
	Vision             *string   `json:"vision" binding:"omitempty,max=500"`
	LogoURL            *string   `json:"logo_url" binding:"omitempty,len=0|url"`
	Department         *string   `json:"department" binding:"omitempty,max=100"`
	City               *string   `json:"city" binding:"omitempty,max=100"`
	Address            *string   `json:"address" binding:"omitempty,max=200"`
	Phone              *string   `json:"phone" binding:"omitempty,max=20"`
	ContactEmail       *string   `json:"contact_email" binding:"omitempty,len=0|email"`
	FacebookURL        *string   `json:"facebook_url" binding:"omitempty,len=0|url"`
	InstagramURL       *string   `json:"instagram_url" binding:"omitempty,len=0|url"`
	WebsiteURL         *string   `json:"website_url" binding:"omitempty,len=0|url"`
	ApproximatePlayers *int      `json:"approximate_players" binding:"omitempty,gte=0"`
	HeadCoachName      *string   `json:"head_coach_name" binding:"omitempty,max=100"`
	Achievements       *string   `json:"achievements" binding:"omitempty,max=2000"`
	CategoryIDs        *[]string `json:"category_ids"`
}

func (in UpdateProfileInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	text := map[string]*string{
		"official_name":   in.OfficialName,
		"nit":             in.NIT,
		"description":     in.Description,
		"mission":         in.Mission,
		"vision":          in.Vision,
		"logo_url":        in.LogoURL,
		"department":      in.Department,
		"city":            in.City,
		"address":         in.Address,
		"phone":           in.Phone,
		"contact_email":   in.ContactEmail,
		"facebook_url":    in.FacebookURL,
		"instagram_url":   in.InstagramURL,
		"website_url":     in.WebsiteURL,
		"head_coach_name": in.HeadCoachName,
		"achievements":    in.Achievements,
	}
	for column, v := range text {
		if v != nil {
			fields[column] = models.NullIfEmpty(v)
		}
	}
	if in.ApproximatePlayers != nil {
		fields["approximate_players"] = *in.ApproximatePlayers
	}
	return fields
}

type AddPlayerInput struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePlayerInput is a school's patch of a roster player. Omitted fields
// keep their value; "" clears category and preferred foot.
type UpdatePlayerInput struct {
	CategoryID    *string   `json:"category_id"`
	PreferredFoot *string   `json:"preferred_foot" binding:"omitempty,len=0|oneof=RIGHT LEFT BOTH"`
	Goals         *int      `json:"goals" binding:"omitempty,gte=0"`
	Assists       *int      `json:"assists" binding:"omitempty,gte=0"`
	MatchesPlayed *int      `json:"matches_played" binding:"omitempty,gte=0"`
	PositionIDs   *[]string `json:"position_ids"`
}

func (in UpdatePlayerInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.CategoryID != nil {
		fields["category_id"] = models.NullIfEmpty(in.CategoryID)
	}
	if in.PreferredFoot != nil {
		var foot *models.Foot
		if v := models.NullIfEmpty(in.PreferredFoot); v != nil {
			f := models.Foot(*v)
			foot = &f
		}
		fields["preferred_foot"] = foot
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

type CreatePostInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=5000"`
	MediaURL    *string `json:"media_url" binding:"omitempty,len=0|url"`
	MediaType   *string `json:"media_type" binding:"omitempty,len=0|oneof=image video"`
}

func mediaTypeOrNil(s *string) *models.MediaType {
	v := models.NullIfEmpty(s)
	if v == nil {
		return nil
	}
	t := models.MediaType(*v)
	return &t
}

func (in CreatePostInput) post(schoolID string) *models.SchoolPost {
	return &models.SchoolPost{
		SchoolID:    schoolID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		MediaURL:    models.NullIfEmpty(in.MediaURL),
		MediaType:   mediaTypeOrNil(in.MediaType),
	}
}

// UpdatePostInput patches a post; nil fields are left unchanged.
type UpdatePostInput struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,min=1,max=5000"`
	MediaURL    *string `json:"media_url" binding:"omitempty,len=0|url"`
	MediaType   *string `json:"media_type" binding:"omitempty,len=0|oneof=image video"`
}

func (in UpdatePostInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		fields["description"] = strings.TrimSpace(*in.Description)
	}
	if in.MediaURL != nil {
		fields["media_url"] = models.NullIfEmpty(in.MediaURL)
	}
	if in.MediaType != nil {
		fields["media_type"] = mediaTypeOrNil(in.MediaType)
	}
	return fields
}
