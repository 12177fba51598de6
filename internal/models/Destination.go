package models

import "time"

// Destination is a bookable location listed on the marketing site.
// Price, rating and distance are decimals kept as text so they round-trip
// exactly as stored.
type Destination struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Country     string  `gorm:"type:varchar(100);not null;index" json:"country"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"type:text" json:"image"`
	Price       string  `gorm:"type:numeric(10,2);not null" json:"price"`
	Rating      string  `gorm:"type:numeric(2,1);not null" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"reviewCount"`
	Distance    *string `gorm:"type:numeric(10,2)" json:"distance"`

	// Location is a WKB encoded point; clients see it as GeoJSON.
	Location []byte `gorm:"type:bytea" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
