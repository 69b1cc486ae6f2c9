package dto

// SearchResult là một kết quả tìm kiếm trong catalog
type SearchResult struct {
	Kind           string  `json:"kind"` // package | basecamp
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Detail         string  `json:"detail"`
	Price          int64   `json:"price"`
	PriceFormatted string  `json:"priceFormatted"`
	Score          float64 `json:"score"`
}
