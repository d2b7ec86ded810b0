package types

import "testing"

func TestStaffValidate(t *testing.T) {
	s := &Staff{Name: "Bob", Role: "Librarian"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	s = &Staff{Name: "", Role: "Librarian"}
	if err := s.Validate(); err != ErrNameEmpty {
		t.Errorf("expected ErrNameEmpty, got %v", err)
	}

	s = &Staff{Name: "Bob", Role: " "}
	if err := s.Validate(); err != ErrRoleEmpty {
		t.Errorf("expected ErrRoleEmpty, got %v", err)
	}
}

func TestStaffUpdateApply(t *testing.T) {
	s := &Staff{ID: 1, Name: "Bob", Role: "Librarian", Contact: "bob@example.com"}

	role := "Head Librarian"
	upd := StaffUpdate{Role: &role}
	upd.Apply(s)

	if s.Role != "Head Librarian" {
		t.Errorf("Role = %q, want %q", s.Role, "Head Librarian")
	}
	if s.Name != "Bob" || s.Contact != "bob@example.com" {
		t.Errorf("unexpected field change: %+v", s)
	}
}
