package httpx

type CartResponse struct {
	ID    string         `json:"id"`
	Items []ItemResponse `json:"items"`
	Total float64        `json:"total"`
	Count int            `json:"count"`
}

type ItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
