package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		// Datastar expects an event stream, even an empty one.
		datastar.NewSSE(w, r)
		return nil
	}
	w.WriteHeader(e.status)
	return nil
}

// Empty answers 204 No Content, or an empty event stream to Datastar.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}
