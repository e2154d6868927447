// Package carousel implements the feature carousel controller used by the
// landing page, the live websocket channel and the terminal preview.
//
// A carousel owns a fixed, non-empty catalog and a single cursor selecting
// the active entry. The cursor only moves through three transitions:
//
//   - Advance: (i + 1) mod N, wrapping from the last entry to the first
//   - Retreat: (i - 1 + N) mod N, wrapping from the first entry to the last
//   - Select:  jump directly to i, for 0 <= i < N
//
// Advance and Retreat form a ring over the N states; Select may move from any
// state to any other. The initial state is index 0 and there is no terminal
// state.
//
// # Out-of-range selection
//
// Select rejects an index outside [0, N) with ErrIndexOutOfRange and leaves
// the cursor where it was. Only query strings are clamped first with
// Cursor.Clamp; explicit selections surface the error.
//
// # Value semantics
//
// Cursor is a small immutable value: each transition returns the next
// cursor instead of mutating the receiver. Controller wraps a cursor together
// with its catalog for views that hold a single mutable carousel.
//
// # Usage Example
//
//	ctrl, err := carousel.New(features)
//	if err != nil {
//	    return err
//	}
//	ctrl.Advance()
//	active := ctrl.Active()
//	for i, on := range ctrl.Indicators() {
//	    render(i, on)
//	}
//
// # Thread Safety
//
// A Controller belongs to exactly one view and is not safe for concurrent
// use. Each websocket connection and each HTTP request builds its own.
package carousel
