// Package domain contains core concepts of the event calendar.
// This file defines the Person identity used for invitors and participants.
// No runtime, rendering, or configuration logic should be added here.
package domain

// Person is an opaque identity. Two persons are the same participant when their names match.
type Person struct {
	Name string
}

func NewPerson(name string) *Person {
	return &Person{Name: name}
}

// Equal reports whether p and other refer to the same identity.
// A nil person is never equal to anything, including another nil.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return false
	}
	return p.Name == other.Name
}

func (p *Person) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}
