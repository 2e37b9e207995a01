package registry

// Driver is the read model of a user who can be booked to drive a vehicle.
type Driver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
