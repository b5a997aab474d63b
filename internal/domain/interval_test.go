package domain

import (
	"testing"
	"time"
)

func mustInterval(t *testing.T, start, end time.Time) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(start, end)
	if err != nil {
		t.Fatalf("NewTimeInterval(%v, %v) error: %v", start, end, err)
	}
	return iv
}

func TestNewTimeInterval_Validation(t *testing.T) {
	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{
			name:  "valid interval",
			start: base,
			end:   base.Add(30 * time.Minute),
		},
		{
			name:    "zero-length interval rejected",
			start:   base,
			end:     base,
			wantErr: true,
		},
		{
			name:    "inverted interval rejected",
			start:   base.Add(time.Hour),
			end:     base,
			wantErr: true,
		},
		{
			name:    "zero start rejected",
			end:     base,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeInterval(tt.start, tt.end)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewTimeInterval_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2025, 3, 4, 12, 0, 0, 0, loc)
	end := time.Date(2025, 3, 4, 13, 0, 0, 0, loc)

	iv := mustInterval(t, start, end)

	if iv.Start.Location() != time.UTC {
		t.Errorf("Start location = %v, want UTC", iv.Start.Location())
	}
	if got, want := iv.Start.Hour(), 10; got != want {
		t.Errorf("Start hour = %d, want %d", got, want)
	}
}

func TestTimeInterval_Overlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 4, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "disjoint",
			a:    mustInterval(t, at(9, 0), at(9, 30)),
			b:    mustInterval(t, at(10, 0), at(10, 30)),
			want: false,
		},
		{
			name: "adjacent is not overlap",
			a:    mustInterval(t, at(10, 0), at(10, 30)),
			b:    mustInterval(t, at(10, 30), at(11, 0)),
			want: false,
		},
		{
			name: "partial overlap",
			a:    mustInterval(t, at(10, 0), at(10, 30)),
			b:    mustInterval(t, at(10, 15), at(10, 45)),
			want: true,
		},
		{
			name: "containment",
			a:    mustInterval(t, at(9, 0), at(17, 0)),
			b:    mustInterval(t, at(10, 0), at(10, 30)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortIntervals(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 4, h, m, 0, 0, time.UTC)
	}

	intervals := []TimeInterval{
		mustInterval(t, at(12, 0), at(13, 0)),
		mustInterval(t, at(9, 0), at(10, 0)),
		mustInterval(t, at(9, 0), at(9, 30)),
	}

	SortIntervals(intervals)

	if !intervals[0].End.Equal(at(9, 30)) {
		t.Errorf("first interval end = %v, want %v (equal starts tie-break on end)", intervals[0].End, at(9, 30))
	}
	if !intervals[2].Start.Equal(at(12, 0)) {
		t.Errorf("last interval start = %v, want %v", intervals[2].Start, at(12, 0))
	}
}
