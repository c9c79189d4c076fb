package regkey

import (
	"sync/atomic"

	"github.com/joshuapare/regnt/pkg/types"
)

// handleRef is a reference-counted, read-only view of one transport handle.
// The owning Key holds the first reference; every iterator derived from it
// retains another. The transport handle is released exactly once, when the
// last reference is dropped. The counter guarantees lifetime safety, not
// call-level thread safety; concurrent calls through the same handle are the
// transport's problem, if it permits them at all.
type handleRef struct {
	t        types.Transport
	h        types.Handle
	refs     atomic.Int32
	released atomic.Bool
}

func newHandleRef(t types.Transport, h types.Handle) *handleRef {
	r := &handleRef{t: t, h: h}
	r.refs.Store(1)
	return r
}

// retain adds a reference. The caller must pair it with release.
func (r *handleRef) retain() *handleRef {
	r.refs.Add(1)
	return r
}

// release drops one reference, closing the transport handle when the last
// one goes. Only the final release can return a transport error.
func (r *handleRef) release() error {
	if r.refs.Add(-1) > 0 {
		return nil
	}
	if r.released.CompareAndSwap(false, true) {
		return r.t.Close(r.h)
	}
	return nil
}

// get returns the live handle, or ErrClosed once the final reference has
// been dropped. Checked before every external call.
func (r *handleRef) get() (types.Handle, error) {
	if r.released.Load() {
		return 0, types.ErrClosed
	}
	return r.h, nil
}
