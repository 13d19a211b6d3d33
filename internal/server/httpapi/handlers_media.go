package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) avatarUpload(c *gin.Context) {
	key, url, err := s.media.AvatarUploadURL(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}
