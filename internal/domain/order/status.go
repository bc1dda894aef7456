package order

// Status is the fulfillment state of an order. The source UI allowed
// setting any status from any status; here the machine is restricted to
// the forward path with Cancelled as an escape valve before delivery.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPacked    Status = "Packed"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPacked, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusPending: {StatusPacked, StatusCancelled},
	StatusPacked:  {StatusDelivered, StatusCancelled},
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
