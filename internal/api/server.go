package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mhruska/concerts-api/docs"
	v1 "github.com/mhruska/concerts-api/internal/api/handler/v1"
	"github.com/mhruska/concerts-api/internal/api/middleware"
	"github.com/mhruska/concerts-api/internal/config"
	"github.com/mhruska/concerts-api/internal/repository"
	"github.com/mhruska/concerts-api/internal/repository/dao"
	"github.com/mhruska/concerts-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	concertHandler := s.initConcertHandler(db)
	ticketHandler := s.initTicketHandler(db)
	bandHandler := s.initBandHandler(db)
	s.MountHandlers(authHandler, userHandler, concertHandler, ticketHandler, bandHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initConcertHandler(db *gorm.DB) *v1.ConcertHandler {
	concertDAO := dao.NewConcertDAO(db)
	repo := repository.NewConcertRepository(concertDAO)
	svc := service.NewConcertService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewConcertHandler(svc, uSvc)

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketDAO := dao.NewTicketDAO(db)
	repo := repository.NewTicketRepository(ticketDAO)
	concertRepo := repository.NewConcertRepository(dao.NewConcertDAO(db))
	svc := service.NewTicketService(repo, concertRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewTicketHandler(svc, uSvc)

	return handler
}

func (s *Server) initBandHandler(db *gorm.DB) *v1.BandHandler {
	bandDAO := dao.NewBandDAO(db)
	repo := repository.NewBandRepository(bandDAO)
	svc := service.NewBandService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewBandHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	concertHandler *v1.ConcertHandler,
	ticketHandler *v1.TicketHandler,
	bandHandler *v1.BandHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/users/register", authHandler.HandleRegister)
		public.POST("/users/login", authHandler.HandleLogin)

		public.GET("/concerts", concertHandler.HandleListConcerts)
		public.GET("/concerts/:concertID", concertHandler.HandleGetConcert)

		public.GET("/tickets/concert/:concertID", ticketHandler.HandleListConcertTickets)

		public.GET("/bands", bandHandler.HandleListBands)
		public.GET("/bands/:bandID", bandHandler.HandleGetBand)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/me", userHandler.HandleGetMe)
		authed.PUT("/users/me", userHandler.HandleUpdateMe)
		authed.PUT("/users/update", userHandler.HandleUpdateUser)
		authed.DELETE("/users/me", userHandler.HandleDeleteMe)

		authed.GET("/tickets/mine", ticketHandler.HandleListMyTickets)
		authed.POST("/tickets/purchase/:concertID", ticketHandler.HandlePurchaseTicket)
		authed.POST("/tickets/:ticketID/purchase", ticketHandler.HandleClaimTicket)
		authed.DELETE("/tickets/:ticketID", ticketHandler.HandleCancelTicket)

		// Admin-gated inside the handlers, like the concert mutations.
		authed.GET("/tickets/admin/all", ticketHandler.HandleListAllTickets)
		authed.PUT("/tickets/admin/:ticketID", ticketHandler.HandleAdjustTicket)

		authed.POST("/concerts", concertHandler.HandleCreateConcert)
		authed.PUT("/concerts/:concertID", concertHandler.HandleUpdateConcert)

		authed.POST("/bands", bandHandler.HandleCreateBand)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Concerts API"
	docs.SwaggerInfo.Description = "Ticket-selling API for concerts."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
