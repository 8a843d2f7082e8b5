package settings

import "time"

// AppSettings is a single-row table holding the campground's general
// configuration. The fixed primary key keeps saves hitting the same row.
type AppSettings struct {
	ID            int       `json:"-" gorm:"primaryKey;default:1"`
	CampsiteName  string    `json:"campsite_name" gorm:"not null;default:''"`
	ContactEmail  string    `json:"contact_email" gorm:"not null;default:''"`
	ContactPhone  string    `json:"contact_phone" gorm:"not null;default:''"`
	CheckInTime   string    `json:"check_in_time" gorm:"not null;default:'14:00'"`
	CheckOutTime  string    `json:"check_out_time" gorm:"not null;default:'11:00'"`
	SeasonYear    int       `json:"season_year" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
