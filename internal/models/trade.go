package models

import "time"

const (
	TradeTypePurchase = "purchase"
	TradeTypeExchange = "exchange"
	TradeTypeLoan     = "loan"
	TradeTypeDonation = "donation"

	TradeStatusPending   = "pending"
	TradeStatusAccepted  = "accepted"
	TradeStatusRejected  = "rejected"
	TradeStatusCompleted = "completed"
)

// Trade links an initiator and a receiver through a listing's negotiation
// lifecycle. Purchase trades are created completed by checkout and never
// pass through the pending phase.
type Trade struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	InitiatorID      uint       `json:"initiator_id" gorm:"not null;index"`
	ReceiverID       uint       `json:"receiver_id" gorm:"not null;index"`
	ListingID        uint       `json:"listing_id" gorm:"not null;index"`
	OfferedListingID *uint      `json:"offered_listing_id"` // exchanges only
	TradeType        string     `json:"trade_type" gorm:"size:20;not null"`
	Status           string     `json:"status" gorm:"size:20;default:pending;index"`
	Message          string     `json:"message"`
	LoanReturnDate   *time.Time `json:"loan_return_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreateTradeRequest struct {
	TradeType        string `json:"trade_type" validate:"required,oneof=exchange loan donation"`
	Message          string `json:"message"`
	OfferedListingID *uint  `json:"offered_listing_id"`
}

type UpdateTradeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// TradeFilter narrows the admin trade listing.
type TradeFilter struct {
	TradeType string
	Status    string
	Query     string // initiator name or email substring
}
