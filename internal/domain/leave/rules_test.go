package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single day",
			start: date(2024, 3, 1),
			end:   date(2024, 3, 1),
			want:  1,
		},
		{
			name:  "three day span is inclusive",
			start: date(2024, 3, 1),
			end:   date(2024, 3, 3),
			want:  3,
		},
		{
			name:  "spans a month boundary",
			start: date(2024, 2, 28),
			end:   date(2024, 3, 2),
			want:  4,
		},
		{
			name:  "end before start floors at one",
			start: date(2024, 3, 5),
			end:   date(2024, 3, 1),
			want:  1,
		},
		{
			name:  "full year",
			start: date(2024, 1, 1),
			end:   date(2024, 12, 31),
			want:  366,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Days(tt.start, tt.end))
		})
	}
}
