package service

import (
	"context"
	"strings"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/validator"
)

type barangayService struct {
	repo      BarangayRepository
	validator *geo.Validator
}

func NewBarangayService(repo BarangayRepository, v *geo.Validator) BarangayService {
	return &barangayService{repo: repo, validator: v}
}

func (s *barangayService) Create(ctx context.Context, req domain.CreateBarangayRequest) (*domain.Barangay, error) {
	req.Name = strings.TrimSpace(req.Name)

	verr := &e.ValidationError{}
	if err := validator.ValidateStruct(req); err != nil {
		fields, ok := validator.Fields(err)
		if !ok {
			return nil, err
		}
		for _, f := range fields {
			verr.Add(f.Field, validator.Message(f))
		}
	}
	if !verr.Has("latitude") && !verr.Has("longitude") {
		if err := s.validator.Check(req.Latitude, req.Longitude); err != nil {
			verr.Add("location", err.Error())
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	b := &domain.Barangay{
		Name:         req.Name,
		Municipality: req.Municipality,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *barangayService) List(ctx context.Context) ([]domain.Barangay, error) {
	return s.repo.List(ctx)
}
