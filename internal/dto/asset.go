package dto

type CreateAssetRequest struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol,omitempty"`
	Value  float64 `json:"value"`
	Price  float64 `json:"price,omitempty"`
}

type UpdateAssetRequest = CreateAssetRequest
