package domain

import "time"

// AdminUser администратор back-office
type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
}
