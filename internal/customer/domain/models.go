package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Kind distinguishes how a customer proves identity. Locals register with a
// national identity card, foreigners with a passport.
type Kind string

const (
	KindLocal   Kind = "LOCAL"
	KindForeign Kind = "FOREIGN"
)

func (k Kind) Valid() bool {
	return k == KindLocal || k == KindForeign
}

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Kind      Kind         `gorm:"not null;uniqueIndex:idx_customers_kind_identity" json:"kind"`
	Name      string       `gorm:"not null" json:"name"`
	// IdentityNo holds the NIC for locals and the passport number for
	// foreigners. Unique per kind so the same passport cannot register twice.
	IdentityNo string    `gorm:"not null;uniqueIndex:idx_customers_kind_identity" json:"identity_no"`
	LicenseNo  string    `json:"license_no,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
