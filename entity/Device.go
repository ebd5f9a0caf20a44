package entity

// Device is a staff session entry on the manager panel. The manager can
// revoke (delete) a device; there is no registration flow, entries are
// seeded.
type Device struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	LastActive string `json:"lastActive"`
	Type       string `json:"type"` // mobile | desktop
	IP         string `json:"ip"`
}
