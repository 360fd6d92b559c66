package app_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"verniti/internal/domain"
)

// ---- in-memory fakes implementing the store ports ----

type fakeHotelStore struct {
	docs map[domain.ID]domain.Document
	seq  int
}

func newFakeHotelStore() *fakeHotelStore {
	return &fakeHotelStore{docs: map[domain.ID]domain.Document{}}
}

func (f *fakeHotelStore) nextID() domain.ID {
	f.seq++
	// offset keeps hex letters in every id, like real ObjectIDs
	return domain.ID(fmt.Sprintf("%024x", 0xabcde0000+f.seq))
}

func (f *fakeHotelStore) Find(ctx context.Context, q domain.HotelFilter) ([]domain.Document, error) {
	var out []domain.Document
	for id, d := range f.docs {
		if q.City != nil && !containsFold(d["city"], *q.City) {
			continue
		}
		if q.Name != nil && !containsFold(d["name"], *q.Name) {
			continue
		}
		out = append(out, withID(d, id))
	}
	return out, nil
}

func (f *fakeHotelStore) FindOne(ctx context.Context, id domain.ID) (domain.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return withID(d, id), nil
}

func (f *fakeHotelStore) InsertOne(ctx context.Context, doc domain.Document) (domain.ID, error) {
	id := f.nextID()
	f.docs[id] = clone(doc)
	return id, nil
}

func (f *fakeHotelStore) UpdateOne(ctx context.Context, id domain.ID, patch domain.Document) (bool, error) {
	// mongod fails an empty $set; the fake does too so callers can't lean on
	// a forgiving merge
	if len(patch) == 0 {
		return false, errors.New("'$set' is empty")
	}
	d, ok := f.docs[id]
	if !ok {
		return false, nil
	}
	for k, v := range patch {
		d[k] = v
	}
	return true, nil
}

func (f *fakeHotelStore) DeleteOne(ctx context.Context, id domain.ID) (bool, error) {
	_, ok := f.docs[id]
	delete(f.docs, id)
	return ok, nil
}

type fakeReviewStore struct {
	docs map[domain.ID]domain.Document
	seq  int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{docs: map[domain.ID]domain.Document{}}
}

func (f *fakeReviewStore) nextID() domain.ID {
	f.seq++
	// offset so review ids never collide with hotel ids
	return domain.ID(fmt.Sprintf("%024x", 0x100000+f.seq))
}

func (f *fakeReviewStore) FindByHotel(ctx context.Context, hotelID domain.ID) ([]domain.Document, error) {
	var out []domain.Document
	for id, d := range f.docs {
		if d["hotel_id"] == hotelID.String() {
			out = append(out, withID(d, id))
		}
	}
	return out, nil
}

func (f *fakeReviewStore) FindOne(ctx context.Context, id, hotelID domain.ID) (domain.Document, error) {
	d, ok := f.docs[id]
	if !ok || d["hotel_id"] != hotelID.String() {
		return nil, domain.ErrNotFound
	}
	return withID(d, id), nil
}

func (f *fakeReviewStore) InsertOne(ctx context.Context, doc domain.Document) (domain.ID, error) {
	id := f.nextID()
	f.docs[id] = clone(doc)
	return id, nil
}

func (f *fakeReviewStore) UpdateOne(ctx context.Context, id, hotelID domain.ID, patch domain.Document) (bool, error) {
	if len(patch) == 0 {
		return false, errors.New("'$set' is empty")
	}
	d, ok := f.docs[id]
	if !ok || d["hotel_id"] != hotelID.String() {
		return false, nil
	}
	for k, v := range patch {
		d[k] = v
	}
	return true, nil
}

func (f *fakeReviewStore) DeleteOne(ctx context.Context, id, hotelID domain.ID) (bool, error) {
	d, ok := f.docs[id]
	if !ok || d["hotel_id"] != hotelID.String() {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeReviewStore) DeleteByHotel(ctx context.Context, hotelID domain.ID) (int64, error) {
	var n int64
	for id, d := range f.docs {
		if d["hotel_id"] == hotelID.String() {
			delete(f.docs, id)
			n++
		}
	}
	return n, nil
}

// ---- helpers ----

func clone(d domain.Document) domain.Document {
	out := make(domain.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func withID(d domain.Document, id domain.ID) domain.Document {
	out := clone(d)
	out[domain.StoreIDKey] = id
	return out
}

func containsFold(v any, sub string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
