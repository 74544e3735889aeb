package model

// User is the authenticated account holder.
type User struct {
	ID          string
	Name        string
	Email       string
	IsOnboarded bool
}
