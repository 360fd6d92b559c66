package app_test

import (
	"context"
	"testing"

	"verniti/internal/app"
	"verniti/internal/domain"
)

// Field rules are exercised through the create paths so the tests cover what
// clients actually hit.

func TestEmailShapes(t *testing.T) {
	svc, _, _ := newHotelService(t)
	ctx := context.Background()

	good := []string{"a@b.co", "first.last@hotel-mail.example.com", "x+tag@y.io"}
	for _, e := range good {
		body := validHotel()
		body["email"] = e
		if _, err := svc.Create(ctx, body); err != nil {
			t.Errorf("email %q rejected: %v", e, err)
		}
	}

	bad := []string{"plain", "no@dot", "two@@at.com", "spaced @mail.com", "@nouser.com"}
	for _, e := range bad {
		body := validHotel()
		body["email"] = e
		if _, err := svc.Create(ctx, body); err == nil {
			t.Errorf("email %q accepted", e)
		}
	}
}

func TestPhoneShapes(t *testing.T) {
	svc, _, _ := newHotelService(t)
	ctx := context.Background()

	good := []string{"123456", "+123456", "390612345678", "+123456789012345"}
	for _, p := range good {
		body := validHotel()
		body["phone"] = p
		if _, err := svc.Create(ctx, body); err != nil {
			t.Errorf("phone %q rejected: %v", p, err)
		}
	}

	bad := []string{"12345", "+12345", "1234567890123456", "phone", "12 34 56", "++123456", "123456+"}
	for _, p := range bad {
		body := validHotel()
		body["phone"] = p
		if _, err := svc.Create(ctx, body); err == nil {
			t.Errorf("phone %q accepted", p)
		}
	}
}

func TestRatingTypes(t *testing.T) {
	h := newFakeHotelStore()
	r := newFakeReviewStore()
	svc := app.NewReviewService(h, r, domain.DefaultPolicies())
	ctx := context.Background()
	hotelID := seedHotel(t, h)

	// BSON round-trips may hand integral types back instead of float64
	for _, v := range []any{float64(3), int(3), int32(3), int64(3)} {
		if _, err := svc.Create(ctx, hotelID, domain.Document{"user": "g@m.co", "rating": v}); err != nil {
			t.Errorf("rating %T(%v) rejected: %v", v, v, err)
		}
	}
	for _, v := range []any{"3", true, nil, float64(2.5)} {
		if _, err := svc.Create(ctx, hotelID, domain.Document{"user": "g@m.co", "rating": v}); err == nil {
			t.Errorf("rating %T(%v) accepted", v, v)
		}
	}
}
