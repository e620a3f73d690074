package domain

// Place is a location a travel can point at. Many travels may share one place.
type Place struct {
	ID   int64
	Name string
}
