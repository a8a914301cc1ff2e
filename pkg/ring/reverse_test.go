package ring

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentity(t *testing.T) {
	got := Identity(5)
	want := []int{0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Identity(5) mismatch (-want +got):\n%s", diff)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name   string
		ring   []int
		start  int
		length int
		want   []int
	}{
		{
			name:   "inside the ring",
			ring:   Identity(5),
			start:  0,
			length: 3,
			want:   []int{2, 1, 0, 3, 4},
		},
		{
			name:   "across the end",
			ring:   Identity(5),
			start:  3,
			length: 3,
			want:   []int{3, 1, 2, 0, 4},
		},
		{
			name:   "across the end of a larger ring",
			ring:   Identity(19),
			start:  17,
			length: 5,
			want:   []int{0, 18, 17, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 2, 1},
		},
		{
			name:   "zero length",
			ring:   Identity(5),
			start:  2,
			length: 0,
			want:   []int{0, 1, 2, 3, 4},
		},
		{
			name:   "single element",
			ring:   Identity(5),
			start:  4,
			length: 1,
			want:   []int{0, 1, 2, 3, 4},
		},
		{
			name:   "whole ring from zero",
			ring:   Identity(5),
			start:  0,
			length: 5,
			want:   []int{4, 3, 2, 1, 0},
		},
		{
			name:   "whole ring from the middle",
			ring:   Identity(5),
			start:  2,
			length: 5,
			want:   []int{3, 2, 1, 0, 4},
		},
		{
			name:   "ends exactly at the boundary",
			ring:   Identity(5),
			start:  3,
			length: 2,
			want:   []int{0, 1, 2, 4, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reverse(tt.ring, tt.start, tt.length)
			if diff := cmp.Diff(tt.want, tt.ring); diff != "" {
				t.Errorf("Reverse(_, %d, %d) mismatch (-want +got):\n%s", tt.start, tt.length, diff)
			}
		})
	}
}

func TestReverseIsItsOwnInverse(t *testing.T) {
	for start := 0; start < 7; start++ {
		for length := 0; length <= 7; length++ {
			r := []int{10, 11, 12, 13, 14, 15, 16}
			want := append([]int(nil), r...)

			Reverse(r, start, length)
			Reverse(r, start, length)

			if diff := cmp.Diff(want, r); diff != "" {
				t.Errorf("double Reverse(_, %d, %d) changed ring (-want +got):\n%s", start, length, diff)
			}
		}
	}
}

func TestReversePanics(t *testing.T) {
	tests := []struct {
		name   string
		ring   []int
		start  int
		length int
		msg    string
	}{
		{"empty ring", nil, 0, 0, "empty ring"},
		{"negative start", Identity(4), -1, 1, "start -1"},
		{"start past end", Identity(4), 4, 1, "start 4"},
		{"negative length", Identity(4), 0, -1, "length -1"},
		{"length exceeds ring", Identity(4), 0, 5, "length 5 exceeds ring size 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Reverse(_, %d, %d) did not panic", tt.start, tt.length)
				}
				if msg, _ := r.(string); !strings.Contains(msg, tt.msg) {
					t.Errorf("panic = %v, want message containing %q", r, tt.msg)
				}
			}()
			Reverse(tt.ring, tt.start, tt.length)
		})
	}
}
