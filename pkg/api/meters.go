package api

import "context"

// MetersDetails returns the id and name of every meter.
func (c *Client) MetersDetails(ctx context.Context) ([]NamedItem, error) {
	return doGet[[]NamedItem](ctx, c, "/api/meters", nil, nil)
}
