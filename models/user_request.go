package models

// UserRequest is one entry of a user's recent activity.
type UserRequest struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Route  string `json:"route"`
}
