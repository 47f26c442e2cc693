package models

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	HashedPassword string    `json:"-"`
	Spots          []Spot    `json:"spots,omitempty" gorm:"foreignKey:OwnerID"`
	Bookings       []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Reviews        []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}
