package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "boxful/internal/errors"
)

// ErrUnauthorized es la señal del 401: quien la reciba debe invalidar la
// sesión y mandar al usuario a /login.
var ErrUnauthorized = errors.New("unauthorized")

// Error es un fallo de negocio reportado por el backend. Messages conserva
// la lista original (el backend a veces responde un arreglo de mensajes).
// En un 401 además envuelve ErrUnauthorized, así el mensaje de negocio
// ("Credenciales inválidas") sobrevive sin romper errors.Is.
type Error struct {
	StatusCode int
	Messages   []string

	sentinel error
}

func (e *Error) Unwrap() error {
	return e.sentinel
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return strings.Join(e.Messages, ", ")
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client envuelve el backend REST. Agrega el bearer token cuando existe y
// mapea el 401 a ErrUnauthorized; no reintenta nada.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &Error{StatusCode: http.StatusOK, Messages: []string{"respuesta de login sin token"}}
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) error {
	return c.do(ctx, http.MethodPost, "/orders", token, req, nil)
}

func (c *Client) ListOrders(ctx context.Context, token string, startDate, endDate *time.Time) ([]OrderRecord, error) {
	path := "/orders"
	if startDate != nil && endDate != nil {
		query := url.Values{}
		query.Set("startDate", startDate.UTC().Format(time.RFC3339))
		query.Set("endDate", endDate.UTC().Format(time.RFC3339))
		path += "?" + query.Encode()
	}

	var orders []OrderRecord
	if err := c.do(ctx, http.MethodGet, path, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Balance(ctx context.Context, token string) (*BalanceResponse, error) {
	var resp BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/orders/balance", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewInternalError("request to backend failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := decodeError(resp)
		apiErr.sentinel = ErrUnauthorized
		return apiErr
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Messages: []string{"respuesta del backend con formato inesperado"}}
	}
	return nil
}

// decodeError extrae el campo "message" del cuerpo de error. Acepta tanto
// un string como un arreglo de strings.
func decodeError(resp *http.Response) *Error {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	apiErr := &Error{StatusCode: resp.StatusCode}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Message) == 0 {
		return apiErr
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		apiErr.Messages = []string{single}
		return apiErr
	}

	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil {
		apiErr.Messages = many
	}
	return apiErr
}
