package models

import (
	"time"

	"gorm.io/gorm"
)

// StatusActive is the only subscriber status in use; the column exists so
// unsubscribed/bounced states can be added without a migration.
const StatusActive = "active"

type Subscriber struct {
	gorm.Model
	Email  string `gorm:"uniqueIndex;not null"` // normalized: trimmed, lower-cased
	Status string `gorm:"default:active"`
}

type Subscribers []Subscriber

// FormToken is a single-use anti-forgery nonce minted per form render and
// consumed on submission.
type FormToken struct {
	Nonce  string `gorm:"primaryKey"`
	Expiry time.Time
}

// Option is a key/value settings row; values are JSON documents.
type Option struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
