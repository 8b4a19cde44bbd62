package api

import (
	"context"
	"fmt"
)

// MeterLineReadings returns line-chart series for the given meters over the
// interval. IDs are comma-joined into the path; the interval travels as the
// timeInterval query parameter in its string form.
func (c *Client) MeterLineReadings(ctx context.Context, meterIDs []int, interval fmt.Stringer) (LineReadings, error) {
	params := map[string]string{"timeInterval": interval.String()}
	return doGet[LineReadings](ctx, c, "/api/readings/line/meters/"+joinIDs(meterIDs), params, nil)
}

// GroupLineReadings returns line-chart series for the given groups over the
// interval.
func (c *Client) GroupLineReadings(ctx context.Context, groupIDs []int, interval fmt.Stringer) (LineReadings, error) {
	params := map[string]string{"timeInterval": interval.String()}
	return doGet[LineReadings](ctx, c, "/api/readings/line/groups/"+joinIDs(groupIDs), params, nil)
}

// MeterBarReadings returns bar-chart series for the given meters over the
// interval, with bars of the given duration.
func (c *Client) MeterBarReadings(ctx context.Context, meterIDs []int, interval, barDuration fmt.Stringer) (BarReadings, error) {
	params := map[string]string{
		"timeInterval": interval.String(),
		"barDuration":  barDuration.String(),
	}
	return doGet[BarReadings](ctx, c, "/api/readings/bar/meters/"+joinIDs(meterIDs), params, nil)
}

// GroupBarReadings returns bar-chart series for the given groups.
func (c *Client) GroupBarReadings(ctx context.Context, groupIDs []int, interval, barDuration fmt.Stringer) (BarReadings, error) {
	params := map[string]string{
		"timeInterval": interval.String(),
		"barDuration":  barDuration.String(),
	}
	return doGet[BarReadings](ctx, c, "/api/readings/bar/groups/"+joinIDs(groupIDs), params, nil)
}
