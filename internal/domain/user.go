package domain

import "strconv"

// UserID is the stable identity of a directory user across requests
type UserID int64

// String returns the decimal form of the id
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// User is a single match from a user directory search (domain entity)
type User struct {
	AvatarURL  string
	ID         UserID
	Login      string
	ProfileURL string
	Type       string
}

// DisplayName returns the name shown for the user in result lists
func (u User) DisplayName() string {
	return u.Login
}

// SearchPage is one page of user search results
type SearchPage struct {
	Incomplete bool
	TotalCount int
	Users      []User
}
