package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/handler"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/middleware"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/service"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
}

func NewServer(
	verifier service.OrderVerifier,
	paymentService service.PaymentService,
	allowedOrigins []string,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// The allow-list gate rejects non-listed origins before any handler;
	// the CORS middleware only decorates responses for listed ones.
	e.Use(middleware.OriginAllowList(allowedOrigins))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: allowedOrigins,
	}))

	paymentHandler := handler.NewPaymentHandler(verifier, paymentService)

	s := &Server{
		echo:           e,
		paymentHandler: paymentHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/verify-order", s.paymentHandler.VerifyOrder)
	api.POST("/save-payment-details", s.paymentHandler.SavePaymentDetails)
	api.GET("/get-user-info", s.paymentHandler.GetUserInfo)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
