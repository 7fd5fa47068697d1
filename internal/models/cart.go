package models

import "time"

// CartItem is a (user, listing) pair. Quantity is fixed at 1: listings are
// unique second-hand items, not stock.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ListingID uint      `json:"listing_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}

type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ListingID uint      `json:"listing_id" gorm:"not null;index"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}

type ListingIDRequest struct {
	ListingID uint `json:"listing_id" validate:"required"`
}
