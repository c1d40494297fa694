package ben

import (
	"reflect"
	"testing"
)

func TestRunsFromAssignment(t *testing.T) {
	tests := []struct {
		name       string
		assignment []uint16
		want       []Run
	}{
		{"empty", nil, nil},
		{"single", []uint16{5}, []Run{{5, 1}}},
		{"two runs", []uint16{1, 1, 1, 2, 2, 2}, []Run{{1, 3}, {2, 3}}},
		{"no repeats", []uint16{1, 2, 3}, []Run{{1, 1}, {2, 1}, {3, 1}}},
		{"alternating", []uint16{1, 2, 1, 2}, []Run{{1, 1}, {2, 1}, {1, 1}, {2, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunsFromAssignment(tt.assignment)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RunsFromAssignment(%v) = %v, want %v", tt.assignment, got, tt.want)
			}
		})
	}
}

func TestRunsFromAssignmentSplitsOnOverflow(t *testing.T) {
	assignment := make([]uint16, int(0xFFFF)+5)
	for i := range assignment {
		assignment[i] = 7
	}
	runs := RunsFromAssignment(assignment)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2 (split at the uint16 length ceiling)", len(runs))
	}
	if runs[0].Length != 0xFFFF || runs[1].Length != 5 {
		t.Errorf("got lengths %d,%d, want 65535,5", runs[0].Length, runs[1].Length)
	}
}

func TestAssignmentFromRunsRoundTrip(t *testing.T) {
	assignment := []uint16{9, 9, 3, 3, 3, 3, 1}
	runs := RunsFromAssignment(assignment)
	got := AssignmentFromRuns(runs)
	if !reflect.DeepEqual(got, assignment) {
		t.Errorf("round trip = %v, want %v", got, assignment)
	}
}
