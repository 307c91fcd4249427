package models

import "time"

// AttendanceMap records the days a member was present:
// year → month name → day numbers.
type AttendanceMap map[string]map[string][]int

// DonationMap records monthly donation totals: year → month name → amount.
type DonationMap map[string]map[string]Amount

// Member represents a registered member. The roll number is the stable
// identifier and the storage document key; profile fields are optional.
type Member struct {
	RollNo     int           `json:"roll_no" db:"roll_no"`
	Name       *string       `json:"name,omitempty" db:"name"`
	LastName   *string       `json:"last_name,omitempty" db:"last_name"`
	PhoneNo    *string       `json:"phone_no,omitempty" db:"phone_no"`
	Email      *string       `json:"email,omitempty" db:"email"`
	Address    *string       `json:"address,omitempty" db:"address"`
	IsAdmin    bool          `json:"is_admin" db:"is_admin"`
	IsActive   bool          `json:"is_active" db:"is_active"`
	Attendance AttendanceMap `json:"attendance" db:"attendance"`
	Donation   DonationMap   `json:"donation" db:"donation"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

// DisplayName joins the member's name fields for presentation.
func (m *Member) DisplayName() string {
	name := ""
	if m.Name != nil {
		name = *m.Name
	}
	if m.LastName != nil && *m.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *m.LastName
	}
	return name
}

// MemberListResponse is the simplified response for member lists.
type MemberListResponse struct {
	RollNo   int     `json:"roll_no"`
	Name     *string `json:"name,omitempty"`
	LastName *string `json:"last_name,omitempty"`
	PhoneNo  *string `json:"phone_no,omitempty"`
	IsActive bool    `json:"is_active"`
}

// ToListResponse converts a Member to MemberListResponse.
func (m *Member) ToListResponse() MemberListResponse {
	return MemberListResponse{
		RollNo:   m.RollNo,
		Name:     m.Name,
		LastName: m.LastName,
		PhoneNo:  m.PhoneNo,
		IsActive: m.IsActive,
	}
}

// MemberProfile carries the editable profile fields for create/update
// requests.
type MemberProfile struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	PhoneNo  *string `json:"phone_no"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
}
