package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NamedItem is a backend entity identified by id and display name.
type NamedItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GroupChildren is the immediate-child index of a group.
type GroupChildren struct {
	Meters []int `json:"meters"`
	Groups []int `json:"groups"`
}

// GroupData is the payload for creating or editing a group.
type GroupData struct {
	Name        string `json:"name"`
	ChildMeters []int  `json:"childMeters"`
	ChildGroups []int  `json:"childGroups"`
}

// LineReading is one point of a line-chart series.
type LineReading struct {
	Reading        float64 `json:"reading"`
	StartTimestamp int64   `json:"startTimestamp"`
	EndTimestamp   int64   `json:"endTimestamp"`
}

// LineReadings maps meter or group IDs (JSON object keys, so strings on the
// wire) to their line-chart series.
type LineReadings map[string][]LineReading

// BarReading is one bar of a bar-chart series.
type BarReading struct {
	Reading        float64 `json:"reading"`
	StartTimestamp int64   `json:"startTimestamp"`
	EndTimestamp   int64   `json:"endTimestamp"`
}

// BarReadings maps meter or group IDs to their bar-chart series.
type BarReadings map[string][]BarReading

// Preferences is the site-wide display preference object.
type Preferences struct {
	DisplayTitle         string `json:"displayTitle"`
	DefaultChartToRender string `json:"defaultChartToRender"`
	DefaultBarStacking   bool   `json:"defaultBarStacking"`
	DefaultLanguage      string `json:"defaultLanguage"`
}

// TimeInterval is a half-open time range rendered as
// "<start>_<end>" in RFC 3339 UTC, or "all" when unbounded. The backend
// parses this string form from the query parameter; readings methods accept
// any fmt.Stringer so callers may substitute their own representation.
type TimeInterval struct {
	start     time.Time
	end       time.Time
	unbounded bool
}

// NewTimeInterval builds a bounded interval from start to end.
func NewTimeInterval(start, end time.Time) TimeInterval {
	return TimeInterval{start: start, end: end}
}

// AllTime is the unbounded interval, rendered as "all".
func AllTime() TimeInterval {
	return TimeInterval{unbounded: true}
}

func (ti TimeInterval) String() string {
	if ti.unbounded {
		return "all"
	}
	return ti.start.UTC().Format(time.RFC3339) + "_" + ti.end.UTC().Format(time.RFC3339)
}

// BarDuration is a bar width in whole days, rendered as an ISO-8601 period
// ("P28D").
type BarDuration int

func (d BarDuration) String() string {
	return fmt.Sprintf("P%dD", int(d))
}

// joinIDs renders ids as a comma-joined decimal path segment, preserving
// order.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
