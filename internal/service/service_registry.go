package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/store"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

type userObjectRegistry struct {
	repo       store.UserObjectRepository
	keyWrap    crypto.KeyWrapService
	passphrase string
	now        func() time.Time

	logger *logger.Logger
}

// NewUserObjectRegistry constructs a [UserObjectRegistry] over repo. Keys
// are sealed with keyWrap under passphrase before they reach repo.
func NewUserObjectRegistry(repo store.UserObjectRepository, keyWrap crypto.KeyWrapService, passphrase string, logger *logger.Logger) UserObjectRegistry {
	return &userObjectRegistry{
		repo:       repo,
		keyWrap:    keyWrap,
		passphrase: passphrase,
		now:        time.Now,
		logger:     logger,
	}
}

func (r *userObjectRegistry) Save(ctx context.Context, uo *models.UserObject) error {
	if uo == nil || uo.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidUserObject)
	}
	if !uo.CommKeys.IsUsable() {
		return fmt.Errorf("%w: %s has no communication keys", ErrInvalidUserObject, uo.Handle())
	}

	sealed, err := r.keyWrap.Seal(uo.CommKeys, r.passphrase)
	if err != nil {
		return fmt.Errorf("seal communication keys: %w", err)
	}

	now := r.now().UTC()
	rec := models.UserObjectRecord{
		APIKey:     uo.APIKey,
		ID:         uo.ID,
		Type:       fmt.Sprintf("%016x", uint64(uo.Type)),
		SealedKeys: sealed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = r.repo.Create(ctx, rec)
	if errors.Is(err, store.ErrUserObjectAlreadyExists) {
		r.logger.Debug().Str("uo", uo.Handle()).Msg("user object already registered, updating")
		err = r.repo.Update(ctx, rec)
	}
	if err != nil {
		return err
	}

	if uo.CreatedAt == nil {
		uo.CreatedAt = &now
	}
	return nil
}

func (r *userObjectRegistry) Get(ctx context.Context, apiKey string, id uint32) (*models.UserObject, error) {
	rec, err := r.repo.Get(ctx, apiKey, id)
	if err != nil {
		return nil, err
	}
	return r.open(rec)
}

func (r *userObjectRegistry) List(ctx context.Context, apiKey string) ([]*models.UserObject, error) {
	recs, err := r.repo.List(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	uos := make([]*models.UserObject, 0, len(recs))
	for _, rec := range recs {
		uo, err := r.open(rec)
		if err != nil {
			return nil, err
		}
		uos = append(uos, uo)
	}
	return uos, nil
}

func (r *userObjectRegistry) Delete(ctx context.Context, apiKey string, id uint32) error {
	return r.repo.Delete(ctx, apiKey, id)
}

func (r *userObjectRegistry) open(rec models.UserObjectRecord) (*models.UserObject, error) {
	desc, err := uotype.Parse("0x" + rec.Type)
	if err != nil {
		return nil, fmt.Errorf("stored type of %s/%s: %w", rec.APIKey, models.HexID(rec.ID), err)
	}

	keys, err := r.keyWrap.Open(rec.SealedKeys, r.passphrase)
	if err != nil {
		return nil, fmt.Errorf("open communication keys of %s/%s: %w", rec.APIKey, models.HexID(rec.ID), err)
	}

	createdAt := rec.CreatedAt
	return &models.UserObject{
		ID:        rec.ID,
		Type:      desc,
		CommKeys:  keys,
		APIKey:    rec.APIKey,
		CreatedAt: &createdAt,
	}, nil
}

// disabledRegistry stands in when no registry database is configured.
type disabledRegistry struct{}

func (disabledRegistry) Save(context.Context, *models.UserObject) error { return ErrRegistryDisabled }

func (disabledRegistry) Get(context.Context, string, uint32) (*models.UserObject, error) {
	return nil, ErrRegistryDisabled
}

func (disabledRegistry) List(context.Context, string) ([]*models.UserObject, error) {
	return nil, ErrRegistryDisabled
}

func (disabledRegistry) Delete(context.Context, string, uint32) error { return ErrRegistryDisabled }
