package entity

import "time"

// Room is a private room (or open table) that can be reserved.
// Price 0 means the room is free to book.
type Room struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	IsAvailable bool   `json:"isAvailable"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
