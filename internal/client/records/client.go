package records

import (
	"context"
	"slices"
)

// Client типизированный клиент одного объекта.
// In форма записи в ответах сервера, Out форма тела create и update.
type Client[In, Out any] struct {
	service    RecordService
	identifier string
	fields     []string
}

// NewClient привязывает сервис к объекту identifier и списку полей.
// Пустой список полей означает набор полей сервера по умолчанию.
func NewClient[In, Out any](service RecordService, identifier string, fields ...string) *Client[In, Out] {
	return &Client[In, Out]{
		service:    service,
		identifier: identifier,
		fields:     slices.Clone(fields),
	}
}

// Identifier возвращает идентификатор объекта
func (c *Client[In, Out]) Identifier() string {
	return c.identifier
}

// Fields возвращает запрашиваемые поля
func (c *Client[In, Out]) Fields() []string {
	return slices.Clone(c.fields)
}

// ReadAll возвращает все записи объекта
func (c *Client[In, Out]) ReadAll(ctx context.Context) ([]In, error) {
	var out []In
	if err := c.service.ReadAll(ctx, c.identifier, c.fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadOne возвращает запись по ключу
func (c *Client[In, Out]) ReadOne(ctx context.Context, key string) (In, error) {
	var out In
	err := c.service.ReadOne(ctx, c.identifier, c.fields, key, &out)
	return out, err
}

// Create создает запись и возвращает ее в том виде, в котором ее сохранил сервер
func (c *Client[In, Out]) Create(ctx context.Context, value Out) (In, error) {
	var out In
	err := c.service.Create(ctx, c.identifier, value, &out)
	return out, err
}

// Update обновляет запись с ключом key
func (c *Client[In, Out]) Update(ctx context.Context, value Out, key string) (In, error) {
	var out In
	err := c.service.Update(ctx, c.identifier, value, key, &out)
	return out, err
}

// Delete удаляет запись с ключом key
func (c *Client[In, Out]) Delete(ctx context.Context, key string) error {
	return c.service.Delete(ctx, c.identifier, key)
}
