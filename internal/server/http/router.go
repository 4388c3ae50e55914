package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routes declares the full REST surface. Authentication is opted into
// per route: public routes stay out of s.authenticate on purpose, so
// the policy is visible here rather than inferred anywhere else.
func (s *HTTPServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.limitBody)

	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/users/loggedin", s.authenticate(s.handleLoggedInUser)).Methods(http.MethodGet)
	r.HandleFunc("/users/logout", s.handleLogout).Methods(http.MethodGet)

	r.HandleFunc("/files/upload", s.authenticate(s.decompress(s.handleUploadReport))).Methods(http.MethodPost)
	r.HandleFunc("/files/getUserFiles", s.authenticate(s.handleUserReports)).Methods(http.MethodGet)
	r.HandleFunc("/files/{id}/snapshot", s.authenticate(s.handleReportSnapshot)).Methods(http.MethodGet)
	// Read-by-id is deliberately public.
	r.HandleFunc("/files/{id}", s.handleReportByID).Methods(http.MethodGet)
	r.HandleFunc("/files/{id}", s.authenticate(s.handleDeleteReport)).Methods(http.MethodDelete)

	r.HandleFunc("/locations/read", s.authenticate(s.handleListLocations)).Methods(http.MethodPost)
	r.HandleFunc("/location/create", s.authenticate(s.handleCreateLocation)).Methods(http.MethodPost)
	r.HandleFunc("/location/read", s.authenticate(s.handleLocationByID)).Methods(http.MethodPost)

	return r
}

// limitBody caps every request body at the configured maximum.
func (s *HTTPServer) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
