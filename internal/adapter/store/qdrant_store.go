package store

import (
	"context"
	"fmt"
	"log"

	"yujuris-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QdrantStore holds the embedded legal library.
type QdrantStore struct {
	client         *qdrant.Client
	collectionName string
}

func NewQdrantStore(client *qdrant.Client, collectionName string) *QdrantStore {
	return &QdrantStore{
		client:         client,
		collectionName: collectionName,
	}
}

func (s *QdrantStore) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err != nil {
		st, ok := status.FromError(err)
		if ok && st.Code() == codes.NotFound {
			err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
				CollectionName: s.collectionName,
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
					Size:     dim,
					Distance: qdrant.Distance_Cosine,
				}),
			})
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}
		} else {
			return err
		}
	}

	// Jurisdiction filter runs on every lookup
	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collectionName,
		FieldName:      "jurisdiction",
		FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		log.Printf("[QDRANT] Warning: Could not create jurisdiction index (might already exist): %v", err)
	}

	return nil
}

// Search returns the nearest articles as snippets; the similarity score is
// used as relevance. Only articles tagged with one of jurisdictions match when
// the list is non-empty.
func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit uint64, jurisdictions []string) ([]entity.Snippet, error) {
	var mustConditions []*qdrant.Condition
	if len(jurisdictions) > 0 {
		mustConditions = append(mustConditions, qdrant.NewMatchKeywords("jurisdiction", jurisdictions...))
	}

	query := &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if len(mustConditions) > 0 {
		query.Filter = &qdrant.Filter{Must: mustConditions}
	}

	res, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	snippets := make([]entity.Snippet, 0, len(res))
	for _, hit := range res {
		payload := hit.Payload
		score := float64(hit.Score)
		snippets = append(snippets, entity.Snippet{
			Title:     payload["title"].GetStringValue(),
			Article:   entity.StrPtr(payload["article"].GetStringValue()),
			Code:      payload["code"].GetStringValue(),
			URL:       entity.StrPtr(payload["url"].GetStringValue()),
			Excerpt:   payload["excerpt"].GetStringValue(),
			Content:   payload["content"].GetStringValue(),
			Relevance: &score,
		})
	}
	return snippets, nil
}

func (s *QdrantStore) Save(ctx context.Context, article entity.Article, vector []float32) error {
	payload := map[string]any{
		"article_id":   article.ID,
		"title":        article.Title,
		"article":      article.Article,
		"code":         article.Code,
		"url":          article.URL,
		"excerpt":      article.Content,
		"content":      article.Content,
		"category":     article.Category,
		"jurisdiction": article.Jurisdiction,
	}

	// Stable ids make reseeding idempotent
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("yujuris:article:"+article.ID))

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Wait:           qdrant.PtrOf(true),
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(id.String()),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(payload),
			},
		},
	})
	return err
}
