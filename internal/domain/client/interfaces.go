package client

import "context"

// Repository provides storage for clients.
type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, id int, req UpdateRequest) (*Client, error)
	Delete(ctx context.Context, id int) error
}
