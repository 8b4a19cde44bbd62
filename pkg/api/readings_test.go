package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wattgrid-hq/wattgrid-client/pkg/httpclient"
)

func TestJoinIDs(t *testing.T) {
	cases := []struct {
		ids  []int
		want string
	}{
		{[]int{1, 2, 3}, "1,2,3"},
		{[]int{42}, "42"},
		{[]int{3, 1, 2}, "3,1,2"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := joinIDs(tc.ids); got != tc.want {
			t.Fatalf("joinIDs(%v) = %q, want %q", tc.ids, got, tc.want)
		}
	}
}

func TestTimeIntervalString(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	got := NewTimeInterval(start, end).String()
	want := "2025-01-01T00:00:00Z_2025-02-01T00:00:00Z"
	if got != want {
		t.Fatalf("interval = %q, want %q", got, want)
	}
	if AllTime().String() != "all" {
		t.Fatalf("unbounded interval = %q", AllTime().String())
	}
}

func TestBarDurationString(t *testing.T) {
	if got := BarDuration(28).String(); got != "P28D" {
		t.Fatalf("bar duration = %q", got)
	}
}

func TestMeterLineReadingsRoundTrip(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/api/readings/line/meters/1,2,3" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("timeInterval"); got != "all" {
			t.Fatalf("timeInterval = %q", got)
		}
		w.Write([]byte(`{"1":[{"reading":4.5,"startTimestamp":100,"endTimestamp":200}],"2":[],"3":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, httpclient.NewRestyTransport(2*time.Second), nil, nil)
	readings, err := c.MeterLineReadings(context.Background(), []int{1, 2, 3}, AllTime())
	if err != nil {
		t.Fatalf("MeterLineReadings: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected exactly one network call, got %d", hits)
	}
	series := readings["1"]
	if len(series) != 1 || series[0].Reading != 4.5 || series[0].StartTimestamp != 100 {
		t.Fatalf("unexpected series: %+v", series)
	}
}

func TestGroupBarReadingsParams(t *testing.T) {
	tr := &fakeTransport{body: []byte(`{}`)}
	c := New("http://backend", tr, nil, nil)

	interval := NewTimeInterval(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	if _, err := c.GroupBarReadings(context.Background(), []int{9, 4}, interval, BarDuration(7)); err != nil {
		t.Fatalf("GroupBarReadings: %v", err)
	}
	call := tr.calls[0]
	if call.url != "http://backend/api/readings/bar/groups/9,4" {
		t.Fatalf("url = %q", call.url)
	}
	if call.params["timeInterval"] != interval.String() {
		t.Fatalf("timeInterval = %q", call.params["timeInterval"])
	}
	if call.params["barDuration"] != "P7D" {
		t.Fatalf("barDuration = %q", call.params["barDuration"])
	}
}
