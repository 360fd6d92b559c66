package domain

// The cascade rules below look asymmetric because they are: any hotel update
// invalidates (deletes) that hotel's reviews, hotel delete never reports a
// miss, review delete always does. These are contract, not accidents, and the
// service tests pin each one.

type UpdateCascade string

const (
	// CascadeInvalidateReviews deletes every review of a hotel whenever the
	// hotel is updated, regardless of which fields changed.
	CascadeInvalidateReviews UpdateCascade = "invalidateReviews"
	CascadeNone              UpdateCascade = "none"
)

type DeleteMode string

const (
	// DeleteIdempotent succeeds whether or not the target existed.
	DeleteIdempotent DeleteMode = "idempotent"
	// DeleteStrict reports ErrNotFound when nothing was deleted.
	DeleteStrict DeleteMode = "strict"
)

type Policies struct {
	OnHotelUpdate  UpdateCascade
	OnHotelDelete  DeleteMode
	OnReviewDelete DeleteMode
}

func DefaultPolicies() Policies {
	return Policies{
		OnHotelUpdate:  CascadeInvalidateReviews,
		OnHotelDelete:  DeleteIdempotent,
		OnReviewDelete: DeleteStrict,
	}
}
