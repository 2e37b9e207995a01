package transportation

// ResourceKind identifies a bookable resource: a driver or a vehicle.
// Each resource can hold at most one non-terminal booking per overlapping
// scheduled window.
type ResourceKind string

const (
	ResourceDriver  ResourceKind = "driver"
	ResourceVehicle ResourceKind = "vehicle"
)

// String returns the kind name used in error messages and lock keys.
func (k ResourceKind) String() string {
	return string(k)
}
