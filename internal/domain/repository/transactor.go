package repository

import "context"

// Transactor выполняет fn в одной транзакции. Все вызовы репозиториев с ctx,
// переданным в fn, участвуют в этой транзакции. Ошибка из fn откатывает всё.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
