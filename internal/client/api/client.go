// Package api is the client for the Vagali REST backend. It owns the
// outbound credential binding: the session layer hands it a token once and
// every subsequent request carries it, except the authentication endpoints.
package api

import "context"

// UserPayload is the normalized user object from the auth endpoint. The
// identifier is always a string, whatever JSON type the backend used.
type UserPayload struct {
	ID             string
	FullName       string
	Email          string
	IsProfessional bool
}

// LoginResult bundles the token and user returned by a successful login.
type LoginResult struct {
	Token string
	User  UserPayload
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	IsProfessional bool   `json:"is_professional"`
}

// Profile is the full own-profile resource.
type Profile struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	IsProfessional bool    `json:"is_professional"`
	Bio            string  `json:"bio"`
	City           string  `json:"cidade"`
	MainService    string  `json:"servico_principal"`
	Keywords       string  `json:"palavras_chave"`
	Rating         float64 `json:"rating"`
}

// ProfilePatch carries a partial profile update; nil fields are untouched.
type ProfilePatch struct {
	FullName       *string `json:"full_name,omitempty"`
	IsProfessional *bool   `json:"is_professional,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	City           *string `json:"cidade,omitempty"`
	MainService    *string `json:"servico_principal,omitempty"`
	Keywords       *string `json:"palavras_chave,omitempty"`
}

// Professional is one row of the public professionals listing.
type Professional struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	MainService string  `json:"servico_principal"`
	City        string  `json:"cidade"`
	Rating      float64 `json:"rating"`
}

// Demand is a service request created by a client user.
type Demand struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	CEP         string `json:"cep"`
	Service     string `json:"servico"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// CreateDemandRequest is the payload for demand creation.
type CreateDemandRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	CEP         string `json:"cep"`
	Service     string `json:"servico"`
}

// Client is the backend surface used by the session manager and the CLI.
//
// SetToken/ClearToken configure the credential attached to subsequent
// requests. Only the session manager may call them.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, req *RegisterRequest) error

	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, patch *ProfilePatch) (*Profile, error)
	ListProfessionals(ctx context.Context, search string) ([]Professional, error)

	ListDemands(ctx context.Context) ([]Demand, error)
	CreateDemand(ctx context.Context, req *CreateDemandRequest) (*Demand, error)

	AvatarUploadURL(ctx context.Context) (key string, url string, err error)

	SetToken(token string)
	ClearToken()
}
