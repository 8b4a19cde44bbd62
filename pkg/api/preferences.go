package api

import "context"

// GetPreferences returns the site-wide display preferences.
func (c *Client) GetPreferences(ctx context.Context) (Preferences, error) {
	return doGet[Preferences](ctx, c, "/api/preferences", nil, nil)
}

// SubmitPreferences replaces the site-wide display preferences.
func (c *Client) SubmitPreferences(ctx context.Context, prefs Preferences) error {
	body := map[string]Preferences{"preferences": prefs}
	_, err := doAuthPost[struct{}](ctx, c, "/api/preferences", body, nil, nil)
	return err
}
