package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

const defaultTimeout = 15 * time.Second

// Client fala com a API de finanças. Implementa AuthRepository,
// TransactionRepository e DashboardRepository sobre um único http.Client
// cujo transporte anexa o bearer token e trata 401 (ver authTransport).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configura o Client.
type Option func(*clientOptions)

type clientOptions struct {
	timeout        time.Duration
	onUnauthorized func()
	baseTransport  http.RoundTripper
}

// WithTimeout define o timeout das requisições.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithOnUnauthorized registra o callback disparado quando um 401 em rota
// autenticada derruba a sessão (o "redirect" para o login).
func WithOnUnauthorized(fn func()) Option {
	return func(o *clientOptions) { o.onUnauthorized = fn }
}

// WithBaseTransport substitui o transporte HTTP subjacente.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.baseTransport = rt }
}

// NewClient cria um Client apontando para baseURL.
func NewClient(baseURL string, sessions repository.SessionRepository, opts ...Option) *Client {
	options := clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   options.timeout,
			Transport: newAuthTransport(options.baseTransport, sessions, options.onUnauthorized),
		},
	}
}

// do executa uma requisição e decodifica a resposta JSON em out (quando não
// nulo). Respostas fora de 2xx viram *types.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", path, err)
	}
	return nil
}

// get executa um GET idempotente com retry fibonacci para falhas de
// transporte. Erros HTTP (4xx/5xx) nunca são repetidos.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, query, nil, out)
		if err == nil {
			return nil
		}
		var apiErr *types.APIError
		if errors.As(err, &apiErr) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		return retry.RetryableError(err)
	})
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &types.APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
			} else {
				apiErr.Message = payload.Error
			}
		}
	}

	return apiErr
}
