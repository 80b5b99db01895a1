package entity

import (
	"errors"
	"testing"
)

func TestCanonicalStatusCaseInsensitive(t *testing.T) {
	cases := map[string]string{
		"open":        StatusOpen,
		"OPEN":        StatusOpen,
		"in progress": StatusInProgress,
		"In Progress": StatusInProgress,
		"IN PROGRESS": StatusInProgress,
		"completed":   StatusCompleted,
		"cancelled":   StatusCancelled,
	}
	for input, want := range cases {
		got, err := CanonicalStatus(input)
		if err != nil {
			t.Errorf("CanonicalStatus(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("CanonicalStatus(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCanonicalStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "Done", "InProgress", "open ", "closed"} {
		_, err := CanonicalStatus(input)
		if err == nil {
			t.Errorf("CanonicalStatus(%q) accepted an unknown status", input)
			continue
		}
		var sErr *StatusError
		if !errors.As(err, &sErr) {
			t.Errorf("CanonicalStatus(%q) returned %T, want *StatusError", input, err)
		}
	}
}

func TestDisplayNames(t *testing.T) {
	c := Customer{FirstName: "John", LastName: "Smith"}
	if got := c.DisplayName(); got != "John Smith" {
		t.Errorf("Customer.DisplayName() = %q, want %q", got, "John Smith")
	}

	v := Vehicle{Year: 2020, Make: "Toyota", Model: "Camry"}
	if got := v.DisplayName(); got != "2020 Toyota Camry" {
		t.Errorf("Vehicle.DisplayName() = %q, want %q", got, "2020 Toyota Camry")
	}
}
