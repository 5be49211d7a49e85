package service

import (
	"github.com/fulldump/topschemes/dataset"
)

type Servicer interface {
	// TopSchemes never fails, load errors are returned as an ErrorRecord.
	TopSchemes(filename string, limit int) dataset.ResultSet
}
