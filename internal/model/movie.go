package model

import "time"

type Movie struct {
	ID          int64
	Title       string
	Description string
	UserID      int64
	Date        time.Time
}
