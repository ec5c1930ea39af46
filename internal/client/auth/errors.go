package auth

import "errors"

var (
	// ErrAuthDiscovery indicates a failed or incomplete client discovery response
	ErrAuthDiscovery = errors.New("auth discovery failed")

	// ErrAuthToken indicates a failed token request or an empty access token
	ErrAuthToken = errors.New("auth token request failed")

	// ErrNotReady indicates an operation that requires a prepared session
	ErrNotReady = errors.New("session is not prepared")
)
