package httpapi

import (
	"time"

	"github.com/vagali/vagali/internal/server/models"
)

// userJSON is the wire form of the user object returned at login.
type userJSON struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	IsProfessional bool   `json:"is_professional"`
}

// profileJSON is the full own-profile resource.
type profileJSON struct {
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

// professionalJSON is one row of the public professionals listing. It omits
// private profile fields.
type professionalJSON struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	MainService string  `json:"servico_principal"`
	City        string  `json:"cidade"`
	Rating      float64 `json:"rating"`
}

type demandJSON struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	CEP         string `json:"cep"`
	Service     string `json:"servico"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		IsProfessional: u.IsProfessional,
	}
}

func toProfileJSON(u *models.User) profileJSON {
	return profileJSON{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		IsProfessional: u.IsProfessional,
		Bio:            u.Bio,
		City:           u.City,
		MainService:    u.MainService,
		Keywords:       u.Keywords,
		Rating:         u.Rating,
	}
}

func toProfessionalJSON(u *models.User) professionalJSON {
	return professionalJSON{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		MainService: u.MainService,
		City:        u.City,
		Rating:      u.Rating,
	}
}

func toDemandJSON(d *models.Demand) demandJSON {
	return demandJSON{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		CEP:         d.CEP,
		Service:     d.Service,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
