package model

import "time"

// Session links a bearer token to the user who obtained it at login.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
}
