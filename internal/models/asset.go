package models

import (
	"time"
)

// Asset is a manually tracked holding. Value is the current worth in the
// user's base currency; Price is the last known unit price for instruments
// that have one.
type Asset struct {
	AssetID   string    `firestore:"assetId" json:"assetId"`
	Name      string    `firestore:"name" json:"name"`
	Symbol    string    `firestore:"symbol" json:"symbol,omitempty"`
	Value     float64   `firestore:"value" json:"value"`
	Price     float64   `firestore:"price" json:"price,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
