package registry

// Storage is the read model of a storage location.
type Storage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
