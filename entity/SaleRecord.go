package entity

// SaleRecord is one day of the weekly sales series shown on the
// manager dashboard and fed to the AI report.
type SaleRecord struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	Date   string `gorm:"uniqueIndex" json:"date"`
	Amount int64  `json:"amount"`
	Orders int    `json:"orders"`
}
