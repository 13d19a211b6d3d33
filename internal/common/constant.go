package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on authorized requests.
const AuthorizationHeaderName = "Authorization"

// TokenScheme is the Authorization header scheme, i.e. "Token <token>".
// The backend keeps the DRF-style scheme label.
const TokenScheme = "Token"
