package responses

type Health struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}
