package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createDemandRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	CEP         string `json:"cep"`
	Service     string `json:"servico"`
}

func (s *Server) listDemands(c *gin.Context) {
	list, err := s.demands.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]demandJSON, 0, len(list))
	for i := range list {
		out = append(out, toDemandJSON(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createDemand(c *gin.Context) {
	var req createDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	demand, err := s.demands.Create(c.Request.Context(), currentUserID(c),
		req.Title, req.Description, req.CEP, req.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDemandJSON(demand))
}
