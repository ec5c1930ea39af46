package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/recordsync/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

//go:generate moq -out doer_mock.go . Doer

// Doer отправляет HTTP запрос; *http.Client реализует этот интерфейс
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером записей
type Client struct {
	httpClient Doer
	baseURL    string
}

// NewClient создает новый API клиент.
// Если в host не указана схема, используется http://
func NewClient(host string) *Client {
	return NewClientWithDoer(host, &http.Client{
		Timeout: DefaultTimeout,
		// Настройка обработки редиректов
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Ограничиваем количество редиректов
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			// Копируем заголовки авторизации при редиректе
			if len(via) > 0 {
				for _, h := range []string{api.HeaderAuthorization, api.HeaderUser, api.HeaderAccessToken} {
					if v := via[0].Header.Get(h); v != "" {
						req.Header.Set(h, v)
					}
				}
			}
			return nil
		},
	})
}

// NewClientWithDoer создает клиент с произвольным транспортом (тесты, кастомные таймауты)
func NewClientWithDoer(host string, doer Doer) *Client {
	return &Client{
		baseURL:    NormalizeHost(host),
		httpClient: doer,
	}
}

// NormalizeHost добавляет схему http:// при ее отсутствии и убирает завершающий "/"
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host != "" && !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/")
}

// BaseURL возвращает нормализованный адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Scheme возвращает схему адреса сервера ("http" или "https")
func (c *Client) Scheme() string {
	if u, err := url.Parse(c.baseURL); err == nil && u.Scheme != "" {
		return u.Scheme
	}
	return "http"
}

// DiscoverClient выполняет неавторизованный GET /oauth/client и читает
// заголовки Client-Id и Auth-Host. Отсутствие заголовков не проверяется здесь.
func (c *Client) DiscoverClient(ctx context.Context) (*api.ClientInfo, error) {
	header, _, err := c.send(ctx, http.MethodGet, c.baseURL+"/oauth/client", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("client discovery failed: %w", err)
	}

	return &api.ClientInfo{
		ClientID: header.Get(api.HeaderClientID),
		AuthHost: header.Get(api.HeaderAuthHost),
	}, nil
}

// RequestToken выполняет POST {authHost}/auth/token с form-encoded телом
func (c *Client) RequestToken(ctx context.Context, authHost string, req api.TokenRequest) (*api.TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", req.ClientID)
	form.Set("username", req.Username)
	form.Set("password", req.Password)
	form.Set("grant_type", api.GrantTypePassword)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, body, err := c.send(ctx, http.MethodPost, strings.TrimRight(authHost, "/")+"/auth/token",
		header, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	var resp api.TokenResponse
	if err := decode(body, &resp); err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// Do выполняет запрос к path относительно baseURL.
// body кодируется в JSON (если не nil), ответ декодируется в result (если не nil).
func (c *Client) Do(ctx context.Context, method, path string, header http.Header, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	_, respBody, err := c.send(ctx, method, c.baseURL+path, header, bodyReader)
	if err != nil {
		return err
	}

	if result != nil {
		if err := decode(respBody, result); err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
	}

	return nil
}

// send выполняет HTTP запрос и проверяет статус ответа
func (c *Client) send(ctx context.Context, method, rawURL string, header http.Header, body io.Reader) (http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Method: method, URL: rawURL, StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
			if statusErr.Message == "" {
				statusErr.Message = errResp.Error
			}
		}
		return nil, nil, statusErr
	}

	return resp.Header, respBody, nil
}

func decode(body []byte, result any) error {
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrDecode, err)
	}
	return nil
}
