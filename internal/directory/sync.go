package directory

import (
	"net/url"

	"go-doctor-directory/internal/domain/entity"
)

// URLSync keeps a filter state and its URL parameters consistent in both
// directions. State changes flow out through ApplyState; URL changes flow in
// through ApplyURL, which only replaces the state when the decoded value
// differs. Re-applying a URL produced by ApplyState is therefore a no-op and
// the two directions cannot feed each other forever.
//
// A URLSync is not safe for concurrent use.
type URLSync struct {
	state  entity.FilterState
	params url.Values
}

func NewURLSync() *URLSync {
	return &URLSync{params: url.Values{}}
}

// State returns the current filter state.
func (s *URLSync) State() entity.FilterState {
	return s.state
}

// Params returns a copy of the parameters last written to the URL.
func (s *URLSync) Params() url.Values {
	out := make(url.Values, len(s.params))
	for k, v := range s.params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// ApplyState stores f and returns the parameters the URL should now carry.
// The boolean is false when the URL already holds exactly these parameters.
func (s *URLSync) ApplyState(f entity.FilterState) (url.Values, bool) {
	s.state = f
	next := Encode(f)
	changed := next.Encode() != s.params.Encode()
	s.params = next
	return s.Params(), changed
}

// ApplyURL decodes params and replaces the state only when it differs from
// the current one. It reports whether the state changed.
func (s *URLSync) ApplyURL(params url.Values) (entity.FilterState, bool) {
	decoded := Decode(params)
	if decoded.Equal(s.state) {
		return s.state, false
	}
	s.state = decoded
	s.params = Encode(decoded)
	return s.state, true
}

// Dispatch merges patch into the current state and pushes the result to the
// URL side.
func (s *URLSync) Dispatch(patch entity.FilterPatch) (entity.FilterState, url.Values) {
	params, _ := s.ApplyState(entity.Update(s.state, patch))
	return s.state, params
}
