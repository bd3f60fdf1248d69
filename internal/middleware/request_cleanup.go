package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest drains whatever the handler left in the request body
// and closes it, so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r.Body != nil {
					_, _ = io.Copy(io.Discard, r.Body)
					_ = r.Body.Close()
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
