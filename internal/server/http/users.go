package http

import (
	"net/http"

	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

type registerRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	PhoneNumber     int64  `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setSessionCookie attaches the session token. SameSite=None because
// the UI is served from a different origin than the API.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie overwrites the cookie with an already-expired
// empty value. Logout is purely client-side: there is no server-side
// revocation list, so the token itself stays valid until the signing
// secret changes.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user := &models.User{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	pub, token, err := s.users.Register(r.Context(), user)
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		s.writeServiceError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", pub.Email)

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, M{"msg": "Created user successfully", "user": pub})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	pub, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, pub)
}

func (s *HTTPServer) handleLoggedInUser(w http.ResponseWriter, r *http.Request) {

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		// Unreachable behind the auth gate, but fail closed anyway.
		writeJSON(w, http.StatusUnauthorized, M{"verified": false, "message": "No token provided"})
		return
	}

	pub, err := s.users.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pub)
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, M{"msg": "Logged out successfully!"})
}
