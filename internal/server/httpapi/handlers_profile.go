package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vagali/vagali/internal/server/services"
)

type profilePatchRequest struct {
	FullName       *string `json:"full_name"`
	IsProfessional *bool   `json:"is_professional"`
	Bio            *string `json:"bio"`
	City           *string `json:"cidade"`
	MainService    *string `json:"servico_principal"`
	Keywords       *string `json:"palavras_chave"`
}

func (s *Server) getProfileMe(c *gin.Context) {
	user, err := s.users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(user))
}

func (s *Server) patchProfileMe(c *gin.Context) {
	var req profilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), currentUserID(c), &services.ProfileUpdate{
		FullName:       req.FullName,
		IsProfessional: req.IsProfessional,
		Bio:            req.Bio,
		City:           req.City,
		MainService:    req.MainService,
		Keywords:       req.Keywords,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(user))
}

func (s *Server) listProfessionals(c *gin.Context) {
	list, err := s.users.ListProfessionals(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]professionalJSON, 0, len(list))
	for i := range list {
		out = append(out, toProfessionalJSON(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}
