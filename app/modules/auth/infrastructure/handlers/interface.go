package authhandlers

import "net/http"

// Handlers defines the HTTP surface of the auth module.
type Handlers interface {
	HandleRegister(w http.ResponseWriter, r *http.Request)
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleMe(w http.ResponseWriter, r *http.Request)
	RequireTrainer(next http.Handler) http.Handler
}
