package server

import (
	"net/http"

	"github.com/jrsteele09/go-credential-service/accounts"
	"github.com/jrsteele09/go-credential-service/auth"
	"github.com/jrsteele09/go-credential-service/internal/config"
	"github.com/jrsteele09/go-credential-service/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	accounts *auth.AccountService
	tokens   *token.Issuer
}

func New(cfg config.Config, repo accounts.Repo) (*Server, error) {
	accountService, err := auth.NewAccountService(repo, auth.WithHashCost(cfg.GetHashCost()))
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to create account service")
	}

	issuer, err := token.NewIssuer(token.NewHMACSigner(cfg.GetTokenSecret()), cfg.GetTokenTTL())
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to create token issuer")
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		accounts: accountService,
		tokens:   issuer,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}
