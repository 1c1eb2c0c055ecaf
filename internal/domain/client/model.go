package client

import "time"

// Client represents a customer of the design practice.
type Client struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastContact *time.Time `json:"last_contact,omitempty"`
}

// Clone returns a copy that shares no memory with the receiver.
func (c Client) Clone() Client {
	out := c
	if c.LastContact != nil {
		t := *c.LastContact
		out.LastContact = &t
	}
	return out
}
