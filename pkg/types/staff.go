package types

import "strings"

// Staff represents a staff member.
type Staff struct {
	ID      int64  `json:"staff_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
}

// Validate checks required fields. Name and role must be non-blank.
func (s *Staff) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameEmpty
	}
	if strings.TrimSpace(s.Role) == "" {
		return ErrRoleEmpty
	}
	return nil
}

// StaffUpdate carries a partial update for a staff member. Nil fields are
// preserved.
type StaffUpdate struct {
	Name    *string `json:"name,omitempty"`
	Role    *string `json:"role,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

// Apply copies the non-nil fields of the update onto the staff member.
func (u StaffUpdate) Apply(s *Staff) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
}
