package api

import (
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/topschemes/service"
)

// Build mounts the API. filename and limit are the values /top-schemes
// passes to the service on every request.
func Build(s service.Servicer, filename string, limit int, version string) *box.B {

	b := box.NewBox()

	b.Resource("/top-schemes").
		WithInterceptors(
			box.SetResponseHeader("Content-Type", "application/json"),
		).
		WithActions(
			box.Get(topSchemes(s, filename, limit)).WithName("topSchemes"),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Top schemes"
	spec.Info.Description = "First rows of the mutual fund schemes dataset."
	spec.Info.Version = version
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {

			spec.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}

			return spec
		}).WithName("openapi"))

	b.Resource("/*").
		WithActions(box.AnyMethod(func(w http.ResponseWriter, r *http.Request) interface{} {
			w.WriteHeader(http.StatusNotFound)
			return PrettyError{
				Message:     "not found",
				Description: "resource '" + r.URL.String() + "' not found",
			}
		}))

	return b
}
