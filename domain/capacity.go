package domain

// CapacityPolicy decides whether an event accepts one more registration.
type CapacityPolicy func(ev *Event) bool

// EnforceCapacity refuses registrations once a limited event is full.
func EnforceCapacity(ev *Event) bool {
	return ev.IsEventNotFull()
}

// IgnoreCapacity accepts every registration, the cap of a limited event stays informational.
func IgnoreCapacity(*Event) bool {
	return true
}

func CapacityPolicyFor(enforce bool) CapacityPolicy {
	if enforce {
		return EnforceCapacity
	}
	return IgnoreCapacity
}
