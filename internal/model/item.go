package model

import "time"

// Item statuses. Only these two values are reachable.
const (
	StatusUnclaimed = "unclaimed"
	StatusClaimed   = "claimed"
)

// ValidStatus reports whether s is one of the two item statuses.
func ValidStatus(s string) bool {
	return s == StatusUnclaimed || s == StatusClaimed
}

// Item is a single lost-and-found registry record.
// The ID is assigned on creation and never changes or gets reused.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name            string `gorm:"not null" json:"name"`
	FoundLocation   string `gorm:"not null" json:"found_location"`
	StorageLocation string `gorm:"not null" json:"storage_location"`

	FoundDate      time.Time `gorm:"not null;index" json:"found_date"`
	ExpirationDate time.Time `gorm:"not null" json:"expiration_date"`

	Status string `gorm:"not null;default:unclaimed" json:"status"`

	// ImageURL is non-empty iff an image was successfully uploaded.
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string { return "lost_items" }
