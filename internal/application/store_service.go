package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/pkg/helpers"
)

// StoreService is the store directory. Elasticsearch indexing and GCS logo
// storage are optional; a nil client disables the feature.
type StoreService struct {
	Stores repo.StoreRepository
	Logger *logrus.Logger

	ES            *elasticsearch.Client
	ESStoresIndex string

	GCS       *storage.Client
	GCSBucket string
}

func NewStoreService(stores repo.StoreRepository, logger *logrus.Logger) *StoreService {
	return &StoreService{Stores: stores, Logger: logger}
}

type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *int64
}

func (s *StoreService) Create(ctx context.Context, in CreateStoreInput) (*entity.Store, error) {
	st := &entity.Store{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	}
	if err := s.Stores.Create(st); err != nil {
		return nil, err
	}
	s.indexStore(ctx, st)
	return st, nil
}

func (s *StoreService) Get(id int64) (*entity.Store, error) {
	st, err := s.Stores.GetByID(id)
	if err != nil {
		return nil, ErrStoreNotFound
	}
	return st, nil
}

// List returns stores annotated with averageRating, and with the requesting
// user's own rating when forUserID is non-zero.
func (s *StoreService) List(f repo.StoreFilter, forUserID int64) ([]*entity.RatedStore, error) {
	return s.Stores.ListRated(f, forUserID)
}

func (s *StoreService) ListByOwner(ownerID int64) ([]*entity.Store, error) {
	return s.Stores.ListByOwner(ownerID)
}

// UploadLogo stores the logo object in GCS and persists its public URL.
func (s *StoreService) UploadLogo(ctx context.Context, storeID int64, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("logo storage not configured")
	}
	st, err := s.Stores.GetByID(storeID)
	if err != nil {
		return "", ErrStoreNotFound
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("stores/%d/%s%s", st.ID, uuid.NewString(), ext)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Stores.UpdateLogoURL(st.ID, url); err != nil {
		return "", err
	}
	st.LogoURL = url
	s.indexStore(ctx, st)
	return url, nil
}

// indexStore pushes the store document to Elasticsearch, best effort. The
// relational tables stay the source of truth for listings.
func (s *StoreService) indexStore(ctx context.Context, st *entity.Store) {
	if s.ES == nil || s.ESStoresIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         st.ID,
		"name":       st.Name,
		"email":      st.Email,
		"address":    st.Address,
		"logo_url":   st.LogoURL,
		"created_at": st.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESStoresIndex,
		DocumentID: fmt.Sprintf("%d", st.ID),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("store_id", st.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("store_id", st.ID).Warn("es index response error")
	}
}

// Search performs a full-text multi_match over store names and addresses.
func (s *StoreService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESStoresIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "address"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESStoresIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
