package settings

import (
	"context"
	"fmt"
	"regexp"

	"campground/internal/shared/apperr"
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type UpdateSettingsRequest struct {
	CampsiteName string `json:"campsite_name" binding:"required,max=200"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required,max=20"`
	CheckInTime  string `json:"check_in_time" binding:"required"`
	CheckOutTime string `json:"check_out_time" binding:"required"`
	SeasonYear   int    `json:"season_year" binding:"required,min=2000,max=2100"`
}

type Service interface {
	Get(ctx context.Context) (*AppSettings, error)
	Save(ctx context.Context, req UpdateSettingsRequest) (*AppSettings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*AppSettings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, req UpdateSettingsRequest) (*AppSettings, error) {
	if !timeOfDayPattern.MatchString(req.CheckInTime) {
		return nil, apperr.Validation("check-in time %q must be HH:MM", req.CheckInTime)
	}
	if !timeOfDayPattern.MatchString(req.CheckOutTime) {
		return nil, apperr.Validation("check-out time %q must be HH:MM", req.CheckOutTime)
	}

	settings := &AppSettings{
		CampsiteName: req.CampsiteName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		SeasonYear:   req.SeasonYear,
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
