package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	PIN       string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
