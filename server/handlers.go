package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jrsteele09/go-credential-service/auth"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Error string `json:"error"`
}

type loginResponse struct {
	// Token is a legacy body copy of the Authorization header. Clients
	// should read the header; the body field may be removed.
	Token string `json:"token"`
}

// RegisterHandler creates a new account from a JSON submission.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission auth.Registration
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		summary, err := s.accounts.Register(r.Context(), submission)
		if err != nil {
			s.writeAuthError(w, err)
			return
		}

		log.Info().Str("username", summary.Username).Msg("account registered")
		writeJSON(w, http.StatusOK, summary)
	}
}

// LoginHandler authenticates a submission and issues a session token.
// The token is delivered in the Authorization response header; the JSON
// body carries a copy for legacy clients.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission auth.Login
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		identity, err := s.accounts.Authenticate(r.Context(), submission)
		if err != nil {
			s.writeAuthError(w, err)
			return
		}

		signedToken, err := s.tokens.Issue(identity.ID)
		if err != nil {
			log.Error().Err(err).Msg("token issuance failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Info().Str("username", identity.Username).Msg("login successful")
		w.Header().Set(AuthTokenHeader, "Bearer "+signedToken)
		writeJSON(w, http.StatusOK, loginResponse{Token: signedToken})
	}
}

// HealthHandler reports process liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// writeAuthError translates the account service error taxonomy into a
// client-facing status and message. Client faults log at warn, server
// faults at error; raw store detail never reaches the response.
func (s *Server) writeAuthError(w http.ResponseWriter, err error) {
	var validationErr *auth.ValidationError
	var duplicateErr *auth.DuplicateAccountError
	var persistenceErr *auth.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		log.Warn().Str("reason", validationErr.Message).Msg("submission rejected")
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &duplicateErr):
		log.Warn().Str("field", duplicateErr.Field).Msg("duplicate account")
		writeError(w, http.StatusConflict, duplicateErr.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Warn().Msg("authentication failed")
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	case errors.As(err, &persistenceErr):
		log.Error().Err(persistenceErr.Unwrap()).Msg("account store failure")
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		log.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
