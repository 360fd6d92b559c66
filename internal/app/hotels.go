package app

import (
	"context"
	"math"

	"verniti/internal/domain"
)

// hotelRequired are the fields a create payload must carry. Updates validate
// only the fields they touch.
var hotelRequired = []string{"name", "city", "phone", "email"}

type HotelService struct {
	hotels   domain.HotelStore
	reviews  domain.ReviewStore
	policies domain.Policies
}

func NewHotelService(h domain.HotelStore, r domain.ReviewStore, p domain.Policies) *HotelService {
	return &HotelService{hotels: h, reviews: r, policies: p}
}

// HotelQuery carries the list filters. City and Name go to the store as
// case-insensitive substring matches; Rating is compared against the computed
// average after aggregation.
type HotelQuery struct {
	City   string
	Name   string
	Rating *int
}

type HotelList struct {
	Count  int               `json:"count"`
	Hotels []domain.Document `json:"hotels"`
}

func (s *HotelService) List(ctx context.Context, q HotelQuery) (HotelList, error) {
	f := domain.HotelFilter{}
	if q.City != "" {
		f.City = &q.City
	}
	if q.Name != "" {
		f.Name = &q.Name
	}
	docs, err := s.hotels.Find(ctx, f)
	if err != nil {
		return HotelList{}, err
	}

	hotels := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		view, avg, err := s.view(ctx, doc)
		if err != nil {
			return HotelList{}, err
		}
		if q.Rating != nil && (avg == nil || *avg != *q.Rating) {
			continue
		}
		hotels = append(hotels, view)
	}
	return HotelList{Count: len(hotels), Hotels: hotels}, nil
}

func (s *HotelService) Get(ctx context.Context, rawID string) (domain.Document, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	doc, err := s.hotels.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	view, _, err := s.view(ctx, doc)
	return view, err
}

func (s *HotelService) Create(ctx context.Context, body domain.Document) (domain.Document, error) {
	for _, f := range hotelRequired {
		if !present(body, f) {
			return nil, &domain.MissingFieldError{Field: f}
		}
	}
	if err := validateEmail("email", body["email"]); err != nil {
		return nil, err
	}
	if err := validatePhone("phone", body["phone"]); err != nil {
		return nil, err
	}

	doc := stripServerKeys(body)
	id, err := s.hotels.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	stored, err := s.hotels.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(stored), nil
}

// Update merges the supplied fields into the stored hotel and then, per the
// OnHotelUpdate policy, deletes every review of that hotel. The cascade fires
// on any update, not just rating-relevant ones.
func (s *HotelService) Update(ctx context.Context, rawID string, patch domain.Document) (domain.Document, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	// Conditional validation goes by key existence: a field in the patch is
	// validated no matter its value, so "" or null can never be written.
	if v, ok := patch["email"]; ok {
		if err := validateEmail("email", v); err != nil {
			return nil, err
		}
	}
	if v, ok := patch["phone"]; ok {
		if err := validatePhone("phone", v); err != nil {
			return nil, err
		}
	}

	p := stripServerKeys(patch)
	if len(p) == 0 {
		// The store rejects an empty merge, so treat it as a no-op against an
		// existing document. The cascade below still fires.
		if _, err := s.hotels.FindOne(ctx, id); err != nil {
			return nil, err
		}
	} else {
		matched, err := s.hotels.UpdateOne(ctx, id, p)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, domain.ErrNotFound
		}
	}
	if s.policies.OnHotelUpdate == domain.CascadeInvalidateReviews {
		if _, err := s.reviews.DeleteByHotel(ctx, id); err != nil {
			return nil, err
		}
	}
	stored, err := s.hotels.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(stored), nil
}

// Delete removes the hotel and then its reviews. The two store calls are not
// atomic: a crash between them leaves orphaned reviews. Accepted limitation.
func (s *HotelService) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}
	deleted, err := s.hotels.DeleteOne(ctx, id)
	if err != nil {
		return err
	}
	if !deleted && s.policies.OnHotelDelete == domain.DeleteStrict {
		return domain.ErrNotFound
	}
	_, err = s.reviews.DeleteByHotel(ctx, id)
	return err
}

// view normalizes a stored hotel, embeds its normalized reviews and the
// computed avg_rating, and returns the average for post-filtering.
func (s *HotelService) view(ctx context.Context, doc domain.Document) (domain.Document, *int, error) {
	id, ok := doc.ID()
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	reviews, err := s.reviews.FindByHotel(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	embedded := make([]domain.Document, 0, len(reviews))
	for _, r := range reviews {
		embedded = append(embedded, domain.Normalize(r))
	}

	out := domain.Normalize(doc)
	out["reviews"] = embedded
	avg := averageRating(reviews)
	if avg != nil {
		out["avg_rating"] = *avg
	} else {
		out["avg_rating"] = nil
	}
	return out, avg, nil
}

// averageRating is the mean of the reviews' ratings rounded to the nearest
// integer, or nil with no reviews. Never persisted.
func averageRating(reviews []domain.Document) *int {
	var sum float64
	var n int
	for _, r := range reviews {
		if v, ok := asNumber(r["rating"]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := int(math.Round(sum / float64(n)))
	return &avg
}

// stripServerKeys copies a client payload without the identifier fields the
// server owns.
func stripServerKeys(body domain.Document) domain.Document {
	out := make(domain.Document, len(body))
	for k, v := range body {
		if k == domain.StoreIDKey || k == domain.PublicIDKey {
			continue
		}
		out[k] = v
	}
	return out
}
