package model

import "time"

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// Valid reports whether s is one of the three lifecycle states.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Sector string

const (
	SectorWater       Sector = "water"
	SectorElectricity Sector = "electricity"
	SectorRoads       Sector = "roads"
	SectorGeneral     Sector = "general"
)

// Complaint is a citizen-submitted issue record. The JSON field names match
// the durable layout of the `complaints` collection, so existing store data
// loads unchanged. ID and Date are set once at creation and never mutated.
type Complaint struct {
	ID          string          `json:"id"`
	Subject     string          `json:"subject"`
	Sector      Sector          `json:"sector"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	Date        time.Time       `json:"date"`
	UserID      string          `json:"userId"`
}

// Counts are the dashboard aggregates derived from the complaint collection.
// Total == Pending + InProgress + Resolved holds for every reachable state.
type Counts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// LocalizedText maps a language code ("en", "hi") to display text.
// Localized content is always exposed as the full mapping, never
// pre-resolved; callers pick the display language at render time.
type LocalizedText map[string]string

// In returns the text for lang, falling back to English, then to any value.
func (t LocalizedText) In(lang string) string {
	if v, ok := t[lang]; ok {
		return v
	}
	if v, ok := t["en"]; ok {
		return v
	}
	for _, v := range t {
		return v
	}
	return ""
}

// Scheme is an immutable localized government-program reference record,
// loaded once per process and never written to the store.
type Scheme struct {
	ID          int           `json:"id"`
	Name        LocalizedText `json:"name"`
	Category    string        `json:"category"`
	Description LocalizedText `json:"description"`
	Benefits    LocalizedText `json:"benefits"`
}

// User is a citizen credential record. Passwords are stored as plaintext
// mock values; see the Verifier contract in internal/auth.
type User struct {
	Aadhaar  string `json:"aadhaar"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Official is a government-official credential record.
type Official struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
)

// Session is the explicit session context created at login or registration
// and discarded at logout. Subject is the phone number (citizens) or employee
// id (officials) and is the submitter reference recorded on complaints.
type Session struct {
	ID       string    `json:"id"`
	Role     Role      `json:"role"`
	Subject  string    `json:"subject"`
	IssuedAt time.Time `json:"issuedAt"`
}
