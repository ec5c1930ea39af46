package api

// Заголовки, которые сервер возвращает на GET /oauth/client
const (
	HeaderClientID = "Client-Id"
	HeaderAuthHost = "Auth-Host"
)

// Заголовки авторизованного запроса к REST API
const (
	HeaderAuthorization = "Authorization"
	HeaderUser          = "user"
	HeaderAccessToken   = "access-token"

	// AuthSchemeOAuth значение заголовка Authorization
	AuthSchemeOAuth = "OAuth"
)

// GrantTypePassword единственный поддерживаемый grant_type
const GrantTypePassword = "password"

// ClientInfo представляет результат discovery запроса /oauth/client
type ClientInfo struct {
	ClientID string // значение заголовка Client-Id
	AuthHost string // значение заголовка Auth-Host как есть (например, "//auth.example.com")
}

// TokenRequest представляет form-encoded запрос на /auth/token
type TokenRequest struct {
	ClientID string
	Username string
	Password string
}

// TokenResponse представляет ответ token endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"`         // access token для заголовка access-token
	TokenType   string `json:"token_type,omitempty"` // тип токена (информационно)
	ExpiresIn   int64  `json:"expires_in,omitempty"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
