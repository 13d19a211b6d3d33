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
	"sync/atomic"
	"time"

	"github.com/vagali/vagali/internal/common"
)

const (
	loginPath         = "/api/v1/auth/login/"
	registerPath      = "/api/v1/auth/register/"
	profileMePath     = "/api/v1/accounts/profile/me/"
	professionalsPath = "/api/v1/accounts/professionals/"
	demandsPath       = "/api/v1/demands/"
	avatarUploadPath  = "/api/v1/media/avatar-upload/"
)

// isAuthPath reports whether the request targets an authentication endpoint.
// Those must never carry a token, so a stale credential cannot pollute a
// fresh login or registration attempt.
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/login/") || strings.Contains(path, "/auth/register/")
}

// authTransport injects the current token into outgoing requests. The token
// is read at send-time, so swapping it applies to every request from that
// point on, including ones built earlier.
type authTransport struct {
	token atomic.Value // string
	next  http.RoundTripper
}

func (t *authTransport) setToken(token string) {
	t.token.Store(token)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, _ := t.token.Load().(string)
	if tok != "" && !isAuthPath(req.URL.Path) {
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthorizationHeaderName, common.TokenScheme+" "+tok)
	}
	return t.next.RoundTrip(req)
}

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	auth    *authTransport
	httpc   *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	auth := &authTransport{next: http.DefaultTransport}
	auth.token.Store("")
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		httpc:   &http.Client{Transport: auth, Timeout: timeout},
	}
}

// SetToken activates the token for all subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.auth.setToken(token)
}

// ClearToken removes the active token.
func (c *HTTPClient) ClearToken() {
	c.auth.setToken("")
}

// do performs one JSON round-trip. A nil in skips the request body, a nil out
// skips decoding. Transport failures map to ErrUnavailable and 401/403 to
// ErrUnauthorized; other non-2xx statuses surface the backend error message.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = resp.Status
		}
		return fmt.Errorf("server error: %s", e.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// loginWire tolerates both token field names seen in the wild: the custom
// login view returns "token", the stock registration flow "auth_token".
type loginWire struct {
	Token     string    `json:"token"`
	AuthToken string    `json:"auth_token"`
	User      *userWire `json:"user"`
}

type userWire struct {
	ID             json.Number `json:"id"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	IsProfessional bool        `json:"is_professional"`
}

// Login authenticates with email and password. The request never carries a
// prior token (see authTransport). A success body missing the token or the
// user identifier fails with ErrIncompleteResponse; nothing is normalized or
// returned in that case.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var wire loginWire
	if err := c.do(ctx, http.MethodPost, loginPath, &in, &wire); err != nil {
		return nil, err
	}

	token := wire.Token
	if token == "" {
		token = wire.AuthToken
	}
	if token == "" || wire.User == nil || wire.User.ID.String() == "" {
		return nil, ErrIncompleteResponse
	}

	return &LoginResult{
		Token: token,
		User: UserPayload{
			ID:             wire.User.ID.String(),
			FullName:       wire.User.FullName,
			Email:          wire.User.Email,
			IsProfessional: wire.User.IsProfessional,
		},
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req *RegisterRequest) error {
	return c.do(ctx, http.MethodPost, registerPath, req, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*Profile, error) {
	p := &Profile{}
	if err := c.do(ctx, http.MethodGet, profileMePath, nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch *ProfilePatch) (*Profile, error) {
	p := &Profile{}
	if err := c.do(ctx, http.MethodPatch, profileMePath, patch, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *HTTPClient) ListProfessionals(ctx context.Context, search string) ([]Professional, error) {
	path := professionalsPath
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var list []Professional
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ListDemands(ctx context.Context) ([]Demand, error) {
	var list []Demand
	if err := c.do(ctx, http.MethodGet, demandsPath, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateDemand(ctx context.Context, req *CreateDemandRequest) (*Demand, error) {
	d := &Demand{}
	if err := c.do(ctx, http.MethodPost, demandsPath, req, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *HTTPClient) AvatarUploadURL(ctx context.Context) (string, string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, avatarUploadPath, nil, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}
