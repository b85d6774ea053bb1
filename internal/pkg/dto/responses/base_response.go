package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total    int    `json:"total"`
	PageSize int    `json:"page_size"`
	NextURL  string `json:"next_url,omitempty"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
