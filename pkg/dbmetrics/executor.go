package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя запросов к БД
// Реализуется *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx,
// что позволяет репозиториям работать одинаково внутри и вне транзакции
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}
