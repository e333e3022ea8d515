package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/credgen/internal/generator"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/random"
	"github.com/vaultpass/credgen/internal/store"
)

// GeneratorService composes credentials and records the ones callers ask to
// keep.
type GeneratorService struct {
	gen   *generator.Generator
	store store.Store
	log   logger.Logger
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator, st store.Store, log logger.Logger) *GeneratorService {
	return &GeneratorService{gen: gen, store: st, log: log}
}

// GenerateUsername composes one username and, when asked, appends it to the
// owner's history.
func (s *GeneratorService) GenerateUsername(ctx context.Context, owner string, req model.GenerateUsernameRequest) (model.GenerateResponse, error) {
	if err := ValidateUsername(req.UsernameSettings); err != nil {
		return model.GenerateResponse{}, err
	}

	resp := s.username(sourceFor(req.Seed), req.UsernameSettings)
	if req.SaveToHistory {
		id, err := s.save(ctx, owner, model.KindUsername, resp.Value, req.UsernameSettings)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.ID = id
	}
	return resp, nil
}

// GeneratePassword composes one password and, when asked, appends it to the
// owner's history.
func (s *GeneratorService) GeneratePassword(ctx context.Context, owner string, req model.GeneratePasswordRequest) (model.GenerateResponse, error) {
	if err := ValidatePassword(req.PasswordSettings); err != nil {
		return model.GenerateResponse{}, err
	}

	resp := s.password(sourceFor(req.Seed), req.PasswordSettings)
	if req.SaveToHistory {
		id, err := s.save(ctx, owner, model.KindPassword, resp.Value, req.PasswordSettings.Resolved())
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.ID = id
	}
	return resp, nil
}

// GenerateBatch composes up to MaxBatch values of one kind. Batch results are
// never persisted.
func (s *GeneratorService) GenerateBatch(_ context.Context, req model.BatchRequest) (model.BatchResponse, error) {
	if !req.Type.Valid() {
		return model.BatchResponse{}, ErrInvalidKind
	}

	count := min(max(req.Count, 0), MaxBatch)
	src := sourceFor(req.Seed)
	resp := model.BatchResponse{Type: req.Type, Values: make([]string, 0, count)}

	switch req.Type {
	case model.KindUsername:
		settings := model.DefaultUsernameSettings()
		if req.Username != nil {
			settings = *req.Username
		}
		if err := ValidateUsername(settings); err != nil {
			return model.BatchResponse{}, err
		}
		opts := UsernameOptions(settings)
		for range count {
			resp.Values = append(resp.Values, s.gen.Username(src, opts))
		}
	case model.KindPassword:
		settings := model.DefaultPasswordSettings()
		if req.Password != nil {
			settings = *req.Password
		}
		if err := ValidatePassword(settings); err != nil {
			return model.BatchResponse{}, err
		}
		opts := PasswordOptions(settings)
		for range count {
			resp.Values = append(resp.Values, s.gen.Password(src, opts))
		}
	}
	return resp, nil
}

// GeneratePair composes a username and a password from the owner's saved
// defaults, falling back to the built-in ones, and records both.
func (s *GeneratorService) GeneratePair(ctx context.Context, owner string) (model.PairResponse, error) {
	prefs, err := s.store.GetPreferences(ctx, owner)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		prefs = model.DefaultPreferences(owner)
	} else if err != nil {
		return model.PairResponse{}, err
	}

	src := random.Default()
	pair := model.PairResponse{
		Username: s.username(src, prefs.UsernameDefaults),
		Password: s.password(src, prefs.PasswordDefaults),
	}

	if pair.Username.ID, err = s.save(ctx, owner, model.KindUsername, pair.Username.Value, prefs.UsernameDefaults); err != nil {
		return model.PairResponse{}, err
	}
	if pair.Password.ID, err = s.save(ctx, owner, model.KindPassword, pair.Password.Value, prefs.PasswordDefaults.Resolved()); err != nil {
		return model.PairResponse{}, err
	}
	return pair, nil
}

// CheckAvailability returns the placeholder availability verdicts.
func (s *GeneratorService) CheckAvailability(req model.AvailabilityRequest) (model.AvailabilityResponse, error) {
	if req.Username == "" {
		return model.AvailabilityResponse{}, ErrUsernameRequired
	}
	return model.AvailabilityResponse{
		Username:  req.Username,
		Platforms: generator.CheckAvailability(req.Username, req.Platforms),
	}, nil
}

func (s *GeneratorService) username(src random.Source, settings model.UsernameSettings) model.GenerateResponse {
	name, truncated := s.gen.ComposeUsername(src, UsernameOptions(settings))
	return model.GenerateResponse{
		Type:      model.KindUsername,
		Value:     name,
		Length:    utf8.RuneCountInString(name),
		Truncated: truncated,
	}
}

func (s *GeneratorService) password(src random.Source, settings model.PasswordSettings) model.GenerateResponse {
	pw := s.gen.Password(src, PasswordOptions(settings))
	strength, score := generator.RateStrength(pw)
	return model.GenerateResponse{
		Type:     model.KindPassword,
		Value:    pw,
		Length:   utf8.RuneCountInString(pw),
		Strength: string(strength),
		Score:    score,
	}
}

func (s *GeneratorService) save(ctx context.Context, owner string, kind model.Kind, value string, settings any) (string, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	id, err := s.store.Append(ctx, owner, kind, value, raw)
	if err != nil {
		s.log.Error("failed to save credential", logger.String("type", string(kind)), logger.Error(err))
		return "", err
	}
	return id, nil
}
