package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/parkshare/PSM-BookingService/pkg/metrics"
)

// defaultPoolStatsInterval интервал сбора статистики connection pool
const defaultPoolStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, собирающая метрики выполнения запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap оборачивает подключение к БД сборщиком метрик
func Wrap(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault оборачивает подключение и запускает фоновый сбор
// статистики connection pool с дефолтным интервалом
// Горутина останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh chan struct{}) *DB {
	wrapped := Wrap(db, m, name)
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата, записывая метрики
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// QueryContext выполняет запрос с результатом, записывая метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки, записывая метрики
// Ошибка выполнения возвращается при Scan, поэтому статус здесь всегда ok
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// BeginTx начинает транзакцию, все запросы которой также попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	op := queryOperation(query)
	status := "ok"
	if err != nil {
		status = "error"
	}

	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// collectPoolStats периодически публикует статистику connection pool
func (d *DB) collectPoolStats(interval time.Duration, stopCh chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues(d.name).Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues(d.name).Set(float64(stats.InUse))
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

// ExecContext выполняет запрос в транзакции, записывая метрики
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

// QueryContext выполняет запрос в транзакции, записывая метрики
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation извлекает тип операции из SQL запроса для лейбла метрики
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
