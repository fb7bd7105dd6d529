package main

import "testing"

func TestParseDistances(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []float64
		wantErr bool
	}{
		{name: "simple list", raw: "0.1,1,10", want: []float64{0.1, 1, 10}},
		{name: "spaces and trailing comma", raw: " 0.5, 2, ", want: []float64{0.5, 2}},
		{name: "not a number", raw: "0.1,abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "only commas", raw: ",,,", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDistances(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d distances, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("distance %d: expected %g, got %g", i, tc.want[i], got[i])
				}
			}
		})
	}
}
