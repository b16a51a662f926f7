package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

// List busca as transações aplicando o filtro no lado do servidor. Campos
// zerados do filtro são omitidos da query string, nunca enviados vazios.
func (c *Client) List(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Month > 0 {
		query.Set("month", strconv.Itoa(filter.Month))
	}
	if filter.Year > 0 {
		query.Set("year", strconv.Itoa(filter.Year))
	}

	var transactions []entity.Transaction
	if err := c.get(ctx, "/transactions", query, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Get busca uma única transação pelo id.
func (c *Client) Get(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transaction entity.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/%d", id), nil, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Create registra uma nova transação.
func (c *Client) Create(ctx context.Context, input entity.CreateTransactionInput) (*entity.Transaction, error) {
	var transaction entity.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Update aplica um PATCH parcial; campos nil ficam fora do corpo.
func (c *Client) Update(ctx context.Context, id int64, input entity.UpdateTransactionInput) (*entity.Transaction, error) {
	var transaction entity.Transaction
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/transactions/%d", id), nil, input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Delete remove a transação no servidor.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil, nil)
}

// MarkAsPaid marca a transação como paga. O servidor define o paidDate; o
// cliente nunca faz esse flip localmente.
func (c *Client) MarkAsPaid(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transaction entity.Transaction
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/transactions/%d/mark-as-paid", id), nil, struct{}{}, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}
