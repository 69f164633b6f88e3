package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplet360/pricing-service/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func window(start, end string) domain.AvailabilityWindow {
	return domain.AvailabilityWindow{StartDate: date(start), EndDate: date(end)}
}

func TestIsDateBookable_UnavailableWindow(t *testing.T) {
	av := &domain.AvailabilityData{
		UnavailableDates: []domain.AvailabilityWindow{window("2024-06-10", "2024-06-15")},
	}

	assert.False(t, IsDateBookable(date("2024-06-12"), av))
	assert.True(t, IsDateBookable(date("2024-06-16"), av))
	assert.True(t, IsDateBookable(date("2024-06-09"), av))
}

func TestIsDateBookable_InclusiveBoundaries(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		window("2024-06-10", "2024-06-15"),
		window("2024-07-01", "2024-07-01"),
		window("2024-12-31", "2025-01-02"),
	}
	av := &domain.AvailabilityData{UnavailableDates: windows}

	for _, w := range windows {
		assert.False(t, IsDateBookable(w.StartDate, av), "start %s", w.StartDate)
		assert.False(t, IsDateBookable(w.EndDate, av), "end %s", w.EndDate)
	}

	available := &domain.AvailabilityData{AvailableDates: windows}
	for _, w := range windows {
		assert.True(t, IsDateBookable(w.StartDate, available))
		assert.True(t, IsDateBookable(w.EndDate, available))
	}
}

func TestIsDateBookable_UnavailableOverridesAvailable(t *testing.T) {
	av := &domain.AvailabilityData{
		AvailableDates:   []domain.AvailabilityWindow{window("2024-06-01", "2024-06-30")},
		UnavailableDates: []domain.AvailabilityWindow{window("2024-06-10", "2024-06-12")},
	}

	assert.True(t, IsDateBookable(date("2024-06-09"), av))
	assert.False(t, IsDateBookable(date("2024-06-10"), av))
	assert.False(t, IsDateBookable(date("2024-06-11"), av))
	assert.True(t, IsDateBookable(date("2024-06-13"), av))
}

func TestIsDateBookable_OutsideAvailableWindows(t *testing.T) {
	av := &domain.AvailabilityData{
		AvailableDates: []domain.AvailabilityWindow{
			window("2024-06-01", "2024-06-05"),
			window("2024-06-20", "2024-06-25"),
		},
	}

	assert.True(t, IsDateBookable(date("2024-06-03"), av))
	assert.False(t, IsDateBookable(date("2024-06-10"), av))
	assert.True(t, IsDateBookable(date("2024-06-25"), av))
	assert.False(t, IsDateBookable(date("2024-06-26"), av))
}

func TestIsDateBookable_OpenWorld(t *testing.T) {
	av := &domain.AvailabilityData{}
	start := date("2024-01-01")

	for i := 0; i < 400; i++ {
		assert.True(t, IsDateBookable(start.AddDate(0, 0, i), av))
	}
}

func TestEvaluator_MissingData(t *testing.T) {
	assert.True(t, IsDateBookable(date("2024-06-12"), nil))
	assert.True(t, Evaluator{FailOpen: true}.IsDateBookable(date("2024-06-12"), nil))
	assert.False(t, Evaluator{FailOpen: false}.IsDateBookable(date("2024-06-12"), nil))
}

func TestIsDateBookable_IgnoresTimeOfDay(t *testing.T) {
	av := &domain.AvailabilityData{
		UnavailableDates: []domain.AvailabilityWindow{{
			StartDate: time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		}},
	}
	lagos := time.FixedZone("WAT", 60*60)

	assert.False(t, IsDateBookable(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), av))
	assert.False(t, IsDateBookable(time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), av))
	// 00:30 по Лагосу это еще 9 июня по UTC, но календарная дата 10 июня
	assert.False(t, IsDateBookable(time.Date(2024, 6, 10, 0, 30, 0, 0, lagos), av))
	assert.True(t, IsDateBookable(time.Date(2024, 6, 16, 0, 30, 0, 0, lagos), av))
}

func TestEvaluator_IsRangeBookable(t *testing.T) {
	av := &domain.AvailabilityData{
		UnavailableDates: []domain.AvailabilityWindow{window("2024-06-10", "2024-06-15")},
	}
	e := DefaultEvaluator

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"before booked window", "2024-06-05", "2024-06-09", true},
		{"checkout on first booked day", "2024-06-05", "2024-06-10", true},
		{"overlaps first booked night", "2024-06-05", "2024-06-11", false},
		{"checkin on last booked day", "2024-06-15", "2024-06-17", false},
		{"after booked window", "2024-06-16", "2024-06-20", true},
		{"empty range", "2024-06-20", "2024-06-20", false},
		{"reversed range", "2024-06-20", "2024-06-18", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsRangeBookable(date(tt.checkIn), date(tt.checkOut), av))
		})
	}
}

func TestEvaluator_FirstUnavailableNight(t *testing.T) {
	av := &domain.AvailabilityData{
		UnavailableDates: []domain.AvailabilityWindow{window("2024-06-10", "2024-06-15")},
	}

	night, found := DefaultEvaluator.FirstUnavailableNight(date("2024-06-08"), date("2024-06-12"), av)
	require.True(t, found)
	assert.Equal(t, date("2024-06-10"), night)

	_, found = DefaultEvaluator.FirstUnavailableNight(date("2024-06-01"), date("2024-06-10"), av)
	assert.False(t, found)
}

func TestEvaluator_Calendar(t *testing.T) {
	av := &domain.AvailabilityData{
		UnavailableDates: []domain.AvailabilityWindow{window("2024-06-10", "2024-06-11")},
	}

	days := DefaultEvaluator.Calendar(date("2024-06-09"), date("2024-06-12"), av)
	require.Len(t, days, 4)
	assert.Equal(t, []bool{true, false, false, true}, []bool{
		days[0].Bookable, days[1].Bookable, days[2].Bookable, days[3].Bookable,
	})
	assert.Equal(t, date("2024-06-09"), days[0].Date)
	assert.Equal(t, date("2024-06-12"), days[3].Date)

	assert.Empty(t, DefaultEvaluator.Calendar(date("2024-06-12"), date("2024-06-09"), av))
	assert.Len(t, DefaultEvaluator.Calendar(date("2024-01-01"), date("2026-01-01"), av), domain.MaxCalendarDays)
}
