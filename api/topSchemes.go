package api

import (
	"context"

	"github.com/fulldump/topschemes/dataset"
	"github.com/fulldump/topschemes/service"
)

// topSchemes always answers 200; load errors travel inside the body as an
// ErrorRecord.
func topSchemes(s service.Servicer, filename string, limit int) interface{} {
	return func(ctx context.Context) dataset.ResultSet {
		return s.TopSchemes(filename, limit)
	}
}
