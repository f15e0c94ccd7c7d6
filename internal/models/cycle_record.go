package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	ColorBrightRed = "bright_red"
	ColorDarkRed   = "dark_red"
	ColorBrown     = "brown"
	ColorPink      = "pink"
	ColorOrange    = "orange"
	ColorGray      = "gray"
	ColorBlack     = "black"
)

// CycleRecord is one logged period. EndDate is nil for ongoing or single-day
// entries; Duration then carries the length when the user supplied one.
type CycleRecord struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	OwnerID   string     `gorm:"not null;index:idx_cycle_records_owner_start" json:"owner_id"`
	StartDate time.Time  `gorm:"type:date;not null;index:idx_cycle_records_owner_start" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Duration  int        `gorm:"not null;default:0" json:"duration,omitempty"`
	Flow      string     `gorm:"not null;default:medium" json:"flow"`
	Color     string     `gorm:"not null;default:''" json:"color,omitempty"`
	Symptoms  []string   `gorm:"serializer:json" json:"symptoms"`
	Note      string     `gorm:"not null;default:''" json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ValidFlows() []string {
	return []string{FlowLight, FlowMedium, FlowHeavy}
}

func ColorPalette() []string {
	return []string{
		ColorBrightRed,
		ColorDarkRed,
		ColorBrown,
		ColorPink,
		ColorOrange,
		ColorGray,
		ColorBlack,
	}
}
