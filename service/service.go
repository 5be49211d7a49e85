package service

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/fulldump/topschemes/dataset"
)

type Service struct {
	dir string
	log *zap.Logger
}

func NewService(dir string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		dir: dir,
		log: log,
	}
}

func (s *Service) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(s.dir, filename)
}

func (s *Service) TopSchemes(filename string, limit int) dataset.ResultSet {

	filename = s.resolve(filename)

	t0 := time.Now()
	rows, err := dataset.Load(filename, limit)
	if err != nil {
		s.log.Warn("load schemes",
			zap.String("file", filename),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return dataset.ErrorRecord(err.Error())
	}

	s.log.Debug("schemes loaded",
		zap.String("file", filename),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	return rows
}
