package order

import "context"

type Repository interface {
	Save(ctx context.Context, order Order) error
	List(ctx context.Context) ([]Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
}
