package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
	"gopkg.in/yaml.v3"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (domain.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return *p, nil
}

// Save replaces the stored profile wholesale.
func (s *profileService) Save(ctx context.Context, p domain.Profile) error {
	return s.profiles.Upsert(ctx, &p)
}

// Import reads a YAML profile document and saves it.
func (s *profileService) Import(ctx context.Context, r io.Reader) (domain.Profile, error) {
	var p domain.Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Profile{}, &domain.ValidationError{Message: "profile document is empty"}
		}
		return domain.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := s.Save(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// Export writes the stored profile as YAML.
func (s *profileService) Export(ctx context.Context, w io.Writer) error {
	p, err := s.Get(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return enc.Close()
}
