package domain

import "context"

// HotelFilter narrows a hotel listing at the store. Substring matches are
// case-insensitive. The avg_rating filter is deliberately absent: it applies
// to a computed value and is post-filtered by the service.
type HotelFilter struct {
	City *string
	Name *string
}

// HotelStore is the document-store face of the hotels collection. Documents
// returned by the store carry their identifier under StoreIDKey as an ID.
type HotelStore interface {
	Find(ctx context.Context, f HotelFilter) ([]Document, error)
	// FindOne returns ErrNotFound when the id matches nothing.
	FindOne(ctx context.Context, id ID) (Document, error)
	InsertOne(ctx context.Context, doc Document) (ID, error)
	// UpdateOne merges patch into the stored document ($set semantics) and
	// reports whether any document matched.
	UpdateOne(ctx context.Context, id ID, patch Document) (bool, error)
	// DeleteOne reports whether a document was deleted.
	DeleteOne(ctx context.Context, id ID) (bool, error)
}

// ReviewStore is the document-store face of the reviews collection. Every
// review is keyed by its own id plus the hotel_id reference; single-document
// operations match on the pair so a review is invisible under another hotel.
type ReviewStore interface {
	FindByHotel(ctx context.Context, hotelID ID) ([]Document, error)
	FindOne(ctx context.Context, id, hotelID ID) (Document, error)
	InsertOne(ctx context.Context, doc Document) (ID, error)
	UpdateOne(ctx context.Context, id, hotelID ID, patch Document) (bool, error)
	DeleteOne(ctx context.Context, id, hotelID ID) (bool, error)
	// DeleteByHotel removes every review referencing the hotel and returns
	// how many went.
	DeleteByHotel(ctx context.Context, hotelID ID) (int64, error)
}
