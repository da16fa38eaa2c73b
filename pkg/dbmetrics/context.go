package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет транзакционный executor в контекст
// Используется transaction manager'ами, чтобы репозитории внутри
// транзакции прозрачно работали через неё
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает executor из контекста, если там есть активная
// транзакция, иначе - переданный fallback (обычно подключение к БД)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
