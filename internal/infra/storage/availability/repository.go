package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/psqlbuilder"
)

// Виды окон в property_availability_windows
const (
	kindAvailable   = "available"
	kindUnavailable = "unavailable"
)

// activeBookingStatuses статусы бронирований, занимающих даты
var activeBookingStatuses = []string{"pending", "confirmed", "checked_in"}

// Repository read-only репозиторий доступности объектов
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetAvailability собирает доступность объекта: окна владельца и действующие бронирования.
// Бронирование занимает ночи с заезда по день перед выездом, день выезда остается свободным.
func (r *Repository) GetAvailability(ctx context.Context, propertyID string) (*domain.AvailabilityData, error) {
	if err := r.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	data := &domain.AvailabilityData{
		AvailableDates:   []domain.AvailabilityWindow{},
		UnavailableDates: []domain.AvailabilityWindow{},
	}

	if err := r.loadOwnerWindows(ctx, propertyID, data); err != nil {
		return nil, err
	}
	if err := r.loadBookedStays(ctx, propertyID, data); err != nil {
		return nil, err
	}

	return data, nil
}

func (r *Repository) ensureProperty(ctx context.Context, propertyID string) error {
	query, args, err := buildPropertyExistsQuery(propertyID)
	if err != nil {
		return fmt.Errorf("%w: ensureProperty - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: property_id=%s", domain.ErrPropertyNotFound, propertyID)
	}
	if err != nil {
		return fmt.Errorf("%w: ensureProperty - scan: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadOwnerWindows(ctx context.Context, propertyID string, data *domain.AvailabilityData) error {
	query, args, err := buildOwnerWindowsQuery(propertyID)
	if err != nil {
		return fmt.Errorf("%w: loadOwnerWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadOwnerWindows - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind   string
			window domain.AvailabilityWindow
		)
		if err := rows.Scan(&kind, &window.StartDate, &window.EndDate); err != nil {
			return fmt.Errorf("%w: loadOwnerWindows - scan window: %v", ErrScanRow, err)
		}

		switch kind {
		case kindAvailable:
			data.AvailableDates = append(data.AvailableDates, window)
		case kindUnavailable:
			data.UnavailableDates = append(data.UnavailableDates, window)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadOwnerWindows - iterate rows: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) loadBookedStays(ctx context.Context, propertyID string, data *domain.AvailabilityData) error {
	query, args, err := buildBookedStaysQuery(propertyID, r.now())
	if err != nil {
		return fmt.Errorf("%w: loadBookedStays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBookedStays - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return fmt.Errorf("%w: loadBookedStays - scan booking: %v", ErrScanRow, err)
		}
		if window, ok := stayWindow(checkIn, checkOut); ok {
			data.UnavailableDates = append(data.UnavailableDates, window)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBookedStays - iterate rows: %v", ErrExecQuery, err)
	}
	return nil
}

// stayWindow окно занятых ночей бронирования; пустые и перевернутые бронирования пропускаются
func stayWindow(checkIn, checkOut time.Time) (domain.AvailabilityWindow, bool) {
	lastNight := checkOut.AddDate(0, 0, -1)
	if lastNight.Before(checkIn) {
		return domain.AvailabilityWindow{}, false
	}
	return domain.AvailabilityWindow{StartDate: checkIn, EndDate: lastNight}, true
}

func buildPropertyExistsQuery(propertyID string) (string, []interface{}, error) {
	return psqlbuilder.Select("id").
		From("properties").
		Where(squirrel.Eq{"id": propertyID}).
		Where(squirrel.Eq{"is_published": true}).
		ToSql()
}

func buildOwnerWindowsQuery(propertyID string) (string, []interface{}, error) {
	return psqlbuilder.Select("kind", "start_date", "end_date").
		From("property_availability_windows").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("start_date").
		ToSql()
}

// buildBookedStaysQuery бронирования, которые еще не закончились к моменту now
func buildBookedStaysQuery(propertyID string, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("check_in_date", "check_out_date").
		From("bookings").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"status": activeBookingStatuses}).
		Where(squirrel.Gt{"check_out_date": now.Format(domain.DateFormat)}).
		OrderBy("check_in_date").
		ToSql()
}
