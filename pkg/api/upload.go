package api

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// uploadFieldName is the single form field the backend reads CSV uploads
// from.
const uploadFieldName = "csvFile"

// SubmitNewMeterReadings uploads a CSV of readings for one meter as a
// multipart form with csv under the csvFile field and no other fields.
func (c *Client) SubmitNewMeterReadings(ctx context.Context, meterID int, filename string, csv io.Reader) error {
	path := "/api/fileProcessing/" + strconv.Itoa(meterID)
	c.log.DebugObj("dispatch", "request", map[string]any{"method": "POST", "path": path, "multipart": true})
	resp, err := c.transport.PostFile(ctx, c.url(path), uploadFieldName, filename, csv, nil, c.authHeaders(nil))
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	_, err = decode[struct{}](resp, accept2xx)
	return err
}
