package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/internal/domains/booking/model"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMinutes int
		expectError bool
	}{
		{
			name:        "morning time",
			raw:         "09:00 AM",
			wantMinutes: 9 * 60,
		},
		{
			name:        "noon",
			raw:         "12:00 PM",
			wantMinutes: 12 * 60,
		},
		{
			name:        "past midnight",
			raw:         "12:30 AM",
			wantMinutes: 30,
		},
		{
			name:        "afternoon time",
			raw:         "01:00 PM",
			wantMinutes: 13 * 60,
		},
		{
			name:        "late evening",
			raw:         "11:59 PM",
			wantMinutes: 23*60 + 59,
		},
		{
			name:        "missing meridiem",
			raw:         "09:00",
			expectError: true,
		},
		{
			name:        "24-hour notation",
			raw:         "14:00 PM",
			expectError: true,
		},
		{
			name:        "empty string",
			raw:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := model.ParseClock(tt.raw)

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantMinutes, clock.Minutes)
			assert.Equal(t, tt.raw, clock.Raw)
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	base := model.Window{Start: 540, End: 660} // 09:00 AM - 11:00 AM

	tests := []struct {
		name      string
		candidate model.Window
		want      bool
	}{
		{
			name:      "identical window",
			candidate: model.Window{Start: 540, End: 660},
			want:      true,
		},
		{
			name:      "starts inside",
			candidate: model.Window{Start: 600, End: 720},
			want:      true,
		},
		{
			name:      "ends inside",
			candidate: model.Window{Start: 480, End: 600},
			want:      true,
		},
		{
			name:      "fully contained",
			candidate: model.Window{Start: 570, End: 630},
			want:      true,
		},
		{
			name:      "fully containing",
			candidate: model.Window{Start: 480, End: 720},
			want:      true,
		},
		{
			name:      "touching at the end",
			candidate: model.Window{Start: 660, End: 780},
			want:      false,
		},
		{
			name:      "touching at the start",
			candidate: model.Window{Start: 480, End: 540},
			want:      false,
		},
		{
			name:      "entirely before",
			candidate: model.Window{Start: 60, End: 120},
			want:      false,
		},
		{
			name:      "entirely after",
			candidate: model.Window{Start: 720, End: 780},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(base))
			assert.Equal(t, tt.want, base.Overlaps(tt.candidate))
		})
	}
}

func TestAvailable(t *testing.T) {
	start, err := model.ParseClock("09:00 AM")
	assert.NoError(t, err)

	end, err := model.ParseClock("11:00 AM")
	assert.NoError(t, err)

	ledger := []model.Booking{
		{
			ID:           1,
			RoomID:       1,
			CustomerName: "Benazir",
			Date:         "2023-09-14",
			StartTime:    start,
			EndTime:      end,
		},
	}

	tests := []struct {
		name   string
		roomID int
		date   string
		win    model.Window
		want   bool
	}{
		{
			name:   "overlapping window in same room on same date",
			roomID: 1,
			date:   "2023-09-14",
			win:    model.Window{Start: 600, End: 720},
			want:   false,
		},
		{
			name:   "same window in another room",
			roomID: 2,
			date:   "2023-09-14",
			win:    model.Window{Start: 600, End: 720},
			want:   true,
		},
		{
			name:   "same window on another date",
			roomID: 1,
			date:   "2023-09-15",
			win:    model.Window{Start: 600, End: 720},
			want:   true,
		},
		{
			name:   "adjacent window in same room",
			roomID: 1,
			date:   "2023-09-14",
			win:    model.Window{Start: 660, End: 780},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Available(ledger, tt.roomID, tt.date, tt.win))
		})
	}
}
