package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore limits the number of bytes per second moved through a
// BlobStore. Reads and writes share one budget.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore wraps inner with a bytesPerSecond limit. The burst equals
// one second of traffic. A non-positive limit returns inner unchanged.
func NewThrottledStore(inner BlobStore, bytesPerSecond int) BlobStore {
	if bytesPerSecond <= 0 {
		return inner
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond),
	}
}

// wait blocks until n bytes may pass. Requests larger than the burst are
// split.
func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	burst := s.limiter.Burst()
	for n > 0 {
		c := min(n, burst)
		if err := s.limiter.WaitN(ctx, c); err != nil {
			return err
		}
		n -= c
	}
	return nil
}

// Open implements BlobStore. Reads of the returned blob are throttled.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{Blob: b, store: s}, nil
}

// Put implements BlobStore.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete implements BlobStore.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List implements BlobStore.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// throttledBlob hides Mappable so that every read goes through ReadAt.
type throttledBlob struct {
	Blob
	store *ThrottledStore
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.store.wait(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}
