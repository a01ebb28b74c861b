// Package chi provides thin adapters for using aitriage with the chi router.
//
// Chi uses standard net/http handlers, so aitriage.Write works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	aitriage "github.com/blackwell-systems/aitriage"
)

// Fail classifies a failed upstream AI call and writes the user-facing
// message. It is a convenience wrapper around aitriage.Write.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
//	    out, err := model.Generate(r.Context(), prompt)
//	    if err != nil {
//	        Fail(w, cls, err)
//	        return
//	    }
//	    _ = json.NewEncoder(w).Encode(out)
//	})
func Fail(w http.ResponseWriter, cls *aitriage.Classifier, v any) {
	aitriage.Write(w, cls, v)
}
