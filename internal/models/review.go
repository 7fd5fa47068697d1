package models

import "time"

// Review is a site feedback entry moderated by admins.
type Review struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Title   string    `json:"title" gorm:"size:100;not null"`
	Content string    `json:"content" gorm:"not null"`
	Tags    string    `json:"tags" gorm:"size:100"`
	Date    time.Time `json:"date"`
	UserID  uint      `json:"user_id" gorm:"not null;index"`
}

type CreateReviewRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
	Tags    string `json:"tags" validate:"required,max=100"`
	Date    string `json:"date" validate:"required"` // YYYY-MM-DD
}

// UserReview rates a counterparty after a completed trade. A reviewer may
// review a given trade at most once; the handlers enforce this.
type UserReview struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReviewerID uint      `json:"reviewer_id" gorm:"not null;index"`
	ReviewedID uint      `json:"reviewed_id" gorm:"not null;index"`
	TradeID    *uint     `json:"trade_id" gorm:"index"`
	Rating     int       `json:"rating" gorm:"not null"` // 1-5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateUserReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
