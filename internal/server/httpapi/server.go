// Package httpapi exposes the Vagali REST endpoints over gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vagali/vagali/internal/logging"
	"github.com/vagali/vagali/internal/server/models"
	"github.com/vagali/vagali/internal/server/services"
)

// userService, demandService, and mediaService are the slices of the service
// layer the handlers need. Tests substitute lightweight fakes.
type userService interface {
	Register(ctx context.Context, email, password, fullName string, isProfessional bool) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd *services.ProfileUpdate) (*models.User, error)
	ListProfessionals(ctx context.Context, search string) ([]models.User, error)
}

type demandService interface {
	Create(ctx context.Context, userID, title, description, cep, service string) (*models.Demand, error)
	ListByUser(ctx context.Context, userID string) ([]models.Demand, error)
}

type mediaService interface {
	AvatarUploadURL(ctx context.Context, userID string) (string, string, error)
}

type Server struct {
	addr   string
	logger logging.Logger
	engine *gin.Engine

	users   userService
	demands demandService
	media   mediaService
}

func NewServer(addr string, logger logging.Logger, users userService, demands demandService, media mediaService, secretKey []byte) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger,
		users:   users,
		demands: demands,
		media:   media,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.POST("/auth/login/", s.login)
	api.POST("/auth/register/", s.register)
	api.GET("/accounts/professionals/", s.listProfessionals)

	authed := api.Group("", AuthMiddleware(secretKey))
	authed.GET("/accounts/profile/me/", s.getProfileMe)
	authed.PATCH("/accounts/profile/me/", s.patchProfileMe)
	authed.GET("/demands/", s.listDemands)
	authed.POST("/demands/", s.createDemand)
	authed.POST("/media/avatar-upload/", s.avatarUpload)

	s.engine = engine
	return s
}

// Handler exposes the routing tree, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info(shutdownCtx, "shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
