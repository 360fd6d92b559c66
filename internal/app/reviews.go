package app

import (
	"context"

	"verniti/internal/domain"
)

// HotelIDKey is the review field referencing the owning hotel. The server
// sets it from the path; client-supplied values are discarded.
const HotelIDKey = "hotel_id"

var reviewRequired = []string{"user", "rating"}

type ReviewService struct {
	hotels   domain.HotelStore
	reviews  domain.ReviewStore
	policies domain.Policies
}

func NewReviewService(h domain.HotelStore, r domain.ReviewStore, p domain.Policies) *ReviewService {
	return &ReviewService{hotels: h, reviews: r, policies: p}
}

type ReviewList struct {
	Count   int               `json:"count"`
	Reviews []domain.Document `json:"reviews"`
}

// List returns every review referencing the hotel. Only the id's shape is
// checked; listing under a well-formed id of a hotel that never existed
// yields an empty list, not a 404.
func (s *ReviewService) List(ctx context.Context, rawHotelID string) (ReviewList, error) {
	hotelID, err := domain.ParseID(rawHotelID)
	if err != nil {
		return ReviewList{}, err
	}
	docs, err := s.reviews.FindByHotel(ctx, hotelID)
	if err != nil {
		return ReviewList{}, err
	}
	reviews := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, domain.Normalize(d))
	}
	return ReviewList{Count: len(reviews), Reviews: reviews}, nil
}

// Get looks a review up by the (review id, hotel id) pair; a review that
// belongs to a different hotel is not found.
func (s *ReviewService) Get(ctx context.Context, rawHotelID, rawID string) (domain.Document, error) {
	hotelID, err := domain.ParseID(rawHotelID)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	doc, err := s.reviews.FindOne(ctx, id, hotelID)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(doc), nil
}

// Create is the one review operation that verifies the hotel actually exists.
func (s *ReviewService) Create(ctx context.Context, rawHotelID string, body domain.Document) (domain.Document, error) {
	hotelID, err := domain.ParseID(rawHotelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.hotels.FindOne(ctx, hotelID); err != nil {
		return nil, err
	}
	for _, f := range reviewRequired {
		if !present(body, f) {
			return nil, &domain.MissingFieldError{Field: f}
		}
	}
	if err := validateEmail("user", body["user"]); err != nil {
		return nil, err
	}
	if err := validateRating("rating", body["rating"]); err != nil {
		return nil, err
	}

	doc := stripServerKeys(body)
	doc[HotelIDKey] = hotelID.String()
	id, err := s.reviews.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	stored, err := s.reviews.FindOne(ctx, id, hotelID)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(stored), nil
}

func (s *ReviewService) Update(ctx context.Context, rawHotelID, rawID string, patch domain.Document) (domain.Document, error) {
	hotelID, err := domain.ParseID(rawHotelID)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	// Key existence, not value truthiness, decides whether a field is
	// validated; see HotelService.Update.
	if v, ok := patch["user"]; ok {
		if err := validateEmail("user", v); err != nil {
			return nil, err
		}
	}
	if v, ok := patch["rating"]; ok {
		if err := validateRating("rating", v); err != nil {
			return nil, err
		}
	}

	p := stripServerKeys(patch)
	delete(p, HotelIDKey)
	if len(p) == 0 {
		// A patch reduced to nothing (empty body, or only server-owned keys)
		// is a no-op merge; the store rejects an empty $set.
		if _, err := s.reviews.FindOne(ctx, id, hotelID); err != nil {
			return nil, err
		}
	} else {
		matched, err := s.reviews.UpdateOne(ctx, id, hotelID, p)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, domain.ErrNotFound
		}
	}
	stored, err := s.reviews.FindOne(ctx, id, hotelID)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(stored), nil
}

// Delete is strict, unlike hotel delete: a miss is a 404.
func (s *ReviewService) Delete(ctx context.Context, rawHotelID, rawID string) error {
	hotelID, err := domain.ParseID(rawHotelID)
	if err != nil {
		return err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}
	deleted, err := s.reviews.DeleteOne(ctx, id, hotelID)
	if err != nil {
		return err
	}
	if !deleted && s.policies.OnReviewDelete == domain.DeleteStrict {
		return domain.ErrNotFound
	}
	return nil
}
