package entity

// LoadStatus is the state of the record store. The three values are disjoint.
type LoadStatus string

const (
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusLoaded  LoadStatus = "loaded"
	LoadStatusFailed  LoadStatus = "failed"
)

// IsLoaded checks if records are available
func (s LoadStatus) IsLoaded() bool {
	return s == LoadStatusLoaded
}

// IsFailed checks if the last fetch failed
func (s LoadStatus) IsFailed() bool {
	return s == LoadStatusFailed
}
