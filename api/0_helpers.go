package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func writePrettyError(w http.ResponseWriter, status int, p PrettyError) {
	w.WriteHeader(status)
	p.MarshalTo(w)
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)
		r := box.GetRequest(ctx)

		if err == box.ErrResourceNotFound {
			writePrettyError(w, http.StatusNotFound, PrettyError{
				Message:     err.Error(),
				Description: fmt.Sprintf("resource '%s' not found", r.URL.String()),
			})
			return
		}

		if err == box.ErrMethodNotAllowed {
			writePrettyError(w, http.StatusMethodNotAllowed, PrettyError{
				Message:     err.Error(),
				Description: fmt.Sprintf("method '%s' not allowed", r.Method),
			})
			return
		}

		writePrettyError(w, http.StatusInternalServerError, PrettyError{
			Message:     err.Error(),
			Description: "Unexpected error",
		})
	}
}
