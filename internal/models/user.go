package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account on the marketplace. Latitude/Longitude are nil until the
// user shares a location; radius search skips users without one.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password     string     `json:"-" gorm:"size:200;not null"`
	Role         string     `json:"role" gorm:"size:20;default:user"`
	FirstName    string     `json:"first_name" gorm:"size:50"`
	LastName     string     `json:"last_name" gorm:"size:50"`
	Mobile       string     `json:"mobile" gorm:"size:20"`
	Gender       string     `json:"gender" gorm:"size:10"`
	Address      string     `json:"address"`
	City         string     `json:"city" gorm:"size:50"`
	State        string     `json:"state" gorm:"size:50"`
	ZipCode      string     `json:"zip_code" gorm:"size:20"`
	Country      string     `json:"country" gorm:"size:50"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ProfileImage string     `json:"profile_image" gorm:"size:255"`
	IsOnline     bool       `json:"is_online" gorm:"default:false"`
	LastSeen     *time.Time `json:"last_seen"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FullName mirrors the display name used in notifications and chat.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type SignupRequest struct {
	Email     string   `json:"email" form:"email" validate:"required,email"`
	Password  string   `json:"password" form:"password" validate:"required,min=8"`
	FirstName string   `json:"first_name" form:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name" form:"last_name" validate:"required,max=50"`
	Mobile    string   `json:"mobile" form:"mobile"`
	Gender    string   `json:"gender" form:"gender"`
	Address   string   `json:"address" form:"address"`
	City      string   `json:"city" form:"city"`
	State     string   `json:"state" form:"state"`
	ZipCode   string   `json:"zip_code" form:"zip_code"`
	Country   string   `json:"country" form:"country"`
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

type UpdateProfileRequest struct {
	FirstName       string   `json:"first_name" form:"first_name" validate:"omitempty,max=50"`
	LastName        string   `json:"last_name" form:"last_name" validate:"omitempty,max=50"`
	Email           string   `json:"email" form:"email" validate:"omitempty,email"`
	Mobile          string   `json:"mobile" form:"mobile"`
	Gender          string   `json:"gender" form:"gender"`
	Address         string   `json:"address" form:"address"`
	City            string   `json:"city" form:"city"`
	State           string   `json:"state" form:"state"`
	ZipCode         string   `json:"zip_code" form:"zip_code"`
	Country         string   `json:"country" form:"country"`
	Latitude        *float64 `json:"latitude" form:"latitude"`
	Longitude       *float64 `json:"longitude" form:"longitude"`
	CurrentPassword string   `json:"current_password" form:"current_password"`
	NewPassword     string   `json:"new_password" form:"new_password" validate:"omitempty,min=8"`
}
