package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	bookingClient "github.com/aplet360/pricing-service/internal/integrations/bookingservice"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
	"github.com/aplet360/pricing-service/pkg/logger"
	"github.com/aplet360/pricing-service/pkg/money"
	"github.com/aplet360/pricing-service/pkg/ptr"
	"github.com/aplet360/pricing-service/pkg/types"
)

type fakeProperties struct {
	property *domain.Property
	err      error
}

func (f *fakeProperties) GetProperty(_ context.Context, _ string) (*domain.Property, error) {
	return f.property, f.err
}

type fakeAvailability struct {
	lookup *availabilityService.Lookup
	err    error
}

func (f *fakeAvailability) Load(_ context.Context, _ string) (*availabilityService.Lookup, error) {
	return f.lookup, f.err
}

type fakeBookingClient struct {
	submitted     []domain.BookingRequest
	authorization string
	confirmation  *domain.BookingConfirmation
	err           error
}

func (f *fakeBookingClient) CreateBooking(_ context.Context, req domain.BookingRequest, authorization string) (*domain.BookingConfirmation, error) {
	f.submitted = append(f.submitted, req)
	f.authorization = authorization
	return f.confirmation, f.err
}

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) ObserveBookingSubmission(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func shortlet() *domain.Property {
	return &domain.Property{
		ID:       "p-1",
		Category: domain.CategoryShortlet,
		Pricing: domain.PropertyPricing{
			PerDay: domain.PricingTier{
				IsActive:        true,
				BasePrice:       money.Naira(10000),
				CleaningFee:     money.Naira(2000),
				SecurityDeposit: money.Naira(5000),
			},
		},
	}
}

func lookup() *availabilityService.Lookup {
	return &availabilityService.Lookup{
		Data: &domain.AvailabilityData{
			UnavailableDates: []domain.AvailabilityWindow{{StartDate: day(10), EndDate: day(15)}},
		},
		Evaluator: engine.DefaultEvaluator,
	}
}

func validRequest() *Request {
	return &Request{
		PropertyID:       "p-1",
		CheckInDate:      day(1),
		CheckOutDate:     day(4),
		EstimatedArrival: types.MustTimeString("14:00"),
		GuestCount:       2,
		Payment:          Payment{Provider: "paystack", Reference: "T123"},
		Authorization:    "Bearer token",
	}
}

type fixture struct {
	uc       *UseCase
	client   *fakeBookingClient
	metrics  *fakeMetrics
	property *fakeProperties
	avail    *fakeAvailability
}

func newFixture() *fixture {
	f := &fixture{
		client:   &fakeBookingClient{confirmation: &domain.BookingConfirmation{ID: "b-1", Status: "pending"}},
		metrics:  &fakeMetrics{},
		property: &fakeProperties{property: shortlet()},
		avail:    &fakeAvailability{lookup: lookup()},
	}
	f.uc = NewUseCase(f.property, f.avail, f.client, f.metrics, logger.Nop())
	f.uc.timeProvider = fixedTime{now: time.Date(2024, 5, 30, 18, 0, 0, 0, time.UTC)}
	f.uc.newKey = func() string { return "key-1" }
	return f
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, money.Naira(37000), resp.TotalPrice)
	assert.Equal(t, "key-1", resp.IdempotencyKey)

	require.Len(t, f.client.submitted, 1)
	submitted := f.client.submitted[0]
	assert.Equal(t, domain.BookingRequest{
		PropertyID:       "p-1",
		CheckInDate:      day(1),
		CheckOutDate:     day(4),
		EstimatedArrival: types.MustTimeString("14:00"),
		GuestCount:       2,
		TotalPrice:       money.Naira(37000),
		Payment:          domain.Payment{Provider: domain.ProviderPaystack, Reference: "T123"},
		IdempotencyKey:   "key-1",
	}, submitted)
	assert.Equal(t, "Bearer token", f.client.authorization)
	assert.Equal(t, []string{outcomeCreated}, f.metrics.outcomes)
}

func TestUseCase_Execute_ExpectedTotal(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ExpectedTotal = ptr.Ptr(money.Naira(37000))

		_, err := f.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("differs", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ExpectedTotal = ptr.Ptr(money.Naira(30000))

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPriceChanged)
		assert.Empty(t, f.client.submitted)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing property", func(r *Request) { r.PropertyID = "" }, ErrInvalidInput},
		{"missing check-in", func(r *Request) { r.CheckInDate = time.Time{} }, ErrInvalidInput},
		{"no guests", func(r *Request) { r.GuestCount = 0 }, ErrInvalidInput},
		{"unknown provider", func(r *Request) { r.Payment.Provider = "stripe" }, ErrInvalidInput},
		{"missing reference", func(r *Request) { r.Payment.Reference = "" }, ErrInvalidInput},
		{"zero nights", func(r *Request) { r.CheckOutDate = r.CheckInDate }, ErrInvalidDateRange},
		{"reversed dates", func(r *Request) { r.CheckOutDate = day(1); r.CheckInDate = day(3) }, ErrInvalidDateRange},
		{"check-in in the past", func(r *Request) { r.CheckInDate = time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC) }, ErrCheckInInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.client.submitted)
		})
	}
}

func TestUseCase_Execute_CheckInToday(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CheckInDate = time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_NightUnavailable(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CheckInDate = day(8)
	req.CheckOutDate = day(11)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Contains(t, err.Error(), "2024-06-10")
	assert.Empty(t, f.client.submitted)
	assert.Equal(t, []string{outcomeUnavailable}, f.metrics.outcomes)
}

func TestUseCase_Execute_CheckoutOnBookedDay(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CheckInDate = day(7)
	req.CheckOutDate = day(10)

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_NoPricing(t *testing.T) {
	f := newFixture()
	f.property.property = &domain.Property{ID: "p-1", Category: domain.CategoryRent}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPricingUnavailable)
}

func TestUseCase_Execute_NegativeTotalNotSubmitted(t *testing.T) {
	f := newFixture()
	f.property.property.Pricing.PerDay.BasePrice = money.Naira(-10000)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPricingUnavailable)
	assert.Empty(t, f.client.submitted)
}

func TestUseCase_Execute_SourceErrors(t *testing.T) {
	t.Run("property not found", func(t *testing.T) {
		f := newFixture()
		f.property.err = fmt.Errorf("%w: p-1", domain.ErrPropertyNotFound)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("property source down", func(t *testing.T) {
		f := newFixture()
		f.property.err = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("availability not found", func(t *testing.T) {
		f := newFixture()
		f.avail.err = availabilityService.ErrPropertyNotFound

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestUseCase_Execute_DegradedAvailability(t *testing.T) {
	t.Run("fail open submits", func(t *testing.T) {
		f := newFixture()
		f.avail.lookup = &availabilityService.Lookup{Degraded: true, Evaluator: engine.Evaluator{FailOpen: true}}

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.True(t, resp.AvailabilityDegraded)
	})

	t.Run("fail closed rejects", func(t *testing.T) {
		f := newFixture()
		f.avail.lookup = &availabilityService.Lookup{Degraded: true, Evaluator: engine.Evaluator{FailOpen: false}}

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDatesUnavailable)
		assert.Empty(t, f.client.submitted)
	})
}

func TestUseCase_Execute_SubmissionErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
		outcome   string
	}{
		{"conflict", bookingClient.ErrConflict, ErrDatesUnavailable, outcomeConflict},
		{"rejected", fmt.Errorf("%w: bad guest count", bookingClient.ErrRejected), ErrBookingRejected, outcomeRejected},
		{"unauthorized", bookingClient.ErrUnauthorized, ErrUnauthorized, outcomeRejected},
		{"unavailable", fmt.Errorf("%w: timeout", bookingClient.ErrInternal), ErrInternal, outcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.client.err = tt.clientErr

			_, err := f.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.outcome}, f.metrics.outcomes)
		})
	}
}

func TestUseCase_Execute_FreshIdempotencyKey(t *testing.T) {
	f := newFixture()
	f.uc.newKey = NewUseCase(nil, nil, nil, nil, logger.Nop()).newKey

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, f.client.submitted, 2)
	assert.Len(t, f.client.submitted[0].IdempotencyKey, 36)
	assert.NotEqual(t, f.client.submitted[0].IdempotencyKey, f.client.submitted[1].IdempotencyKey)
}
