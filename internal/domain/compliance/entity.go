package compliance

import "time"

type CertStatus string

const (
	StatusValid    CertStatus = "valid"
	StatusExpiring CertStatus = "expiring"
	StatusExpired  CertStatus = "expired"
)

// expiringWindow is how close to expiry a certificate counts as
// "expiring" for the alerts view.
const expiringWindow = 30 * 24 * time.Hour

// Certificate is a regulatory document (PESO approval, storage license,
// fire safety audit). Status is derived from ExpiryDate at read time.
type Certificate struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	CertificateType string    `gorm:"column:certificate_type" json:"certificateType"`
	CertificateNo   string    `gorm:"column:certificate_no;uniqueIndex" json:"certificateNo"`
	Issuer          string    `gorm:"column:issuer" json:"issuer"`
	IssuedDate      time.Time `gorm:"column:issued_date" json:"issuedDate"`
	ExpiryDate      time.Time `gorm:"column:expiry_date" json:"expiryDate"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`

	Status CertStatus `gorm:"-" json:"status"`
}

func (Certificate) TableName() string { return "certificates" }

// StatusAt classifies the certificate relative to now.
func (c *Certificate) StatusAt(now time.Time) CertStatus {
	switch {
	case !c.ExpiryDate.After(now):
		return StatusExpired
	case c.ExpiryDate.Sub(now) <= expiringWindow:
		return StatusExpiring
	default:
		return StatusValid
	}
}
