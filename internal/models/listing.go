package models

import "time"

const (
	ListingTypeSale     = "sale"
	ListingTypeExchange = "exchange"
	ListingTypeLoan     = "loan"
	ListingTypeDonation = "donation"
)

// Listing is an item offered for sale, exchange, loan or donation. Exactly one
// of Price, ExchangePreferences, LoanDuration is set, matching ListingType;
// donation listings carry none. The handlers enforce this, not the schema.
type Listing struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Title               string    `json:"title" gorm:"size:100;not null"`
	Description         string    `json:"description" gorm:"not null"`
	Condition           string    `json:"condition" gorm:"size:50;not null"` // New, Like New, Good, Fair, Poor
	Price               *float64  `json:"price"`
	ListingType         string    `json:"listing_type" gorm:"size:20;not null;index"`
	ExchangePreferences *string   `json:"exchange_preferences"`
	LoanDuration        *int      `json:"loan_duration"` // days
	IsActive            bool      `json:"is_active" gorm:"default:true;index"`
	Views               int       `json:"views" gorm:"default:0"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	Location            string    `json:"location" gorm:"size:100"`
	UserID              uint      `json:"user_id" gorm:"not null;index"`
	CategoryID          uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ListingImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Filename  string    `json:"filename" gorm:"size:255;not null"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	ListingID uint      `json:"listing_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateListingRequest struct {
	Title               string   `json:"title" form:"title" validate:"required,max=100"`
	Description         string   `json:"description" form:"description" validate:"required"`
	Condition           string   `json:"condition" form:"condition" validate:"required"`
	CategoryID          uint     `json:"category_id" form:"category_id" validate:"required"`
	ListingType         string   `json:"listing_type" form:"listing_type" validate:"required,oneof=sale exchange loan donation"`
	Price               *float64 `json:"price" form:"price"`
	ExchangePreferences *string  `json:"exchange_preferences" form:"exchange_preferences"`
	LoanDuration        *int     `json:"loan_duration" form:"loan_duration"`
	Location            string   `json:"location" form:"location"`
	Latitude            *float64 `json:"latitude" form:"latitude"`
	Longitude           *float64 `json:"longitude" form:"longitude"`
}

// ListingFilter is the conjunctive filter set of the listing query engine.
// Nil/zero members are unbounded.
type ListingFilter struct {
	CategoryID  uint
	ListingType string
	Condition   string
	MinPrice    *float64
	MaxPrice    *float64
	Query       string
}

// ListingResult is a listing optionally annotated with the great-circle
// distance (km, one decimal) from the requester. Distance is nil unless
// radius filtering was applied.
type ListingResult struct {
	Listing
	Distance *float64 `json:"distance,omitempty"`
}
