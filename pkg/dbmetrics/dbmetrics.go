package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aplet360/pricing-service/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DBExecutor минимальный интерфейс выполнения запросов.
// Ему удовлетворяют *sql.DB и *DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обёртка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db       *sql.DB
	metrics  *metrics.Metrics
	database string
}

// Wrap оборачивает соединение и запускает периодический сбор статистики пула.
// Сбор останавливается при закрытии stopCh.
func Wrap(db *sql.DB, m *metrics.Metrics, database string, stopCh <-chan struct{}, interval time.Duration) *DB {
	wrapped := &DB{db: db, metrics: m, database: database}
	if m != nil && stopCh != nil {
		go wrapped.collectStats(stopCh, interval)
	}
	return wrapped
}

// WrapWithDefault как Wrap с интервалом по умолчанию
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, database string, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, database, stopCh, DefaultStatsInterval)
}

// QueryContext выполняет запрос и фиксирует метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки и фиксирует метрики.
// Ошибка sql.Row становится известна только при Scan, поэтому статус всегда ok.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	operation := Operation(query)
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (d *DB) collectStats(stopCh <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats()
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.database).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.database).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.database).Set(float64(stats.Idle))
}

// Operation возвращает тип SQL операции (select, insert, ...) для метки метрики
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
