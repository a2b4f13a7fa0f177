package tracking

// Route is the ordered waypoint sequence every shipment follows. The final
// entry semantically means "delivered". Read-only after startup.
var Route = []string{
	"Manmad",
	"Yeola",
	"Kopargaon",
	"Talegaon Dighe",
	"Sangamner",
	"Delivered",
}

// StatusAt maps a route index to the status the record carries at that step.
func StatusAt(i int) Status {
	switch {
	case i <= 0:
		return StatusOrderPlaced
	case i >= len(Route)-1:
		return StatusDelivered
	default:
		return StatusInTransit
	}
}

// ProgressAt is floor(i / (len-1) * 100): 0 at the first waypoint, 100 at
// the last.
func ProgressAt(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(Route)-1 {
		return 100
	}
	return i * 100 / (len(Route) - 1)
}

// IndexOf locates a waypoint on the route, falling back to 0 for anything
// unknown so a corrupted record still renders a view.
func IndexOf(location string) int {
	for i, name := range Route {
		if name == location {
			return i
		}
	}
	return 0
}

// Next returns the waypoint after the given one, or nil at the end of the
// route.
func Next(location string) *string {
	i := IndexOf(location)
	if i >= len(Route)-1 {
		return nil
	}
	return &Route[i+1]
}
