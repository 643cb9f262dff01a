package http

import "net/http"

// apiEnabled answers 403 to every request while the API is switched off in
// the app settings.
func (h *Handler) apiEnabled(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.enableAPI {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
