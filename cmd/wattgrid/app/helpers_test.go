package app

import (
	"reflect"
	"testing"
)

func TestParseIDs(t *testing.T) {
	cases := []struct {
		args    []string
		want    []int
		wantErr bool
	}{
		{args: []string{"1", "2", "3"}, want: []int{1, 2, 3}},
		{args: []string{"1,2,3"}, want: []int{1, 2, 3}},
		{args: []string{"7"}, want: []int{7}},
		{args: []string{"a"}, wantErr: true},
		{args: []string{","}, wantErr: true},
	}
	for _, tc := range cases {
		ids, err := parseIDs(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseIDs(%v): expected error", tc.args)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseIDs(%v): %v", tc.args, err)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("parseIDs(%v) = %v, want %v", tc.args, ids, tc.want)
		}
	}
}
