package controllers

type Meta struct {
	Total  int64  `json:"total"`
	Limit  *int64 `json:"limit"`
	Offset *int64 `json:"offset"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}

type APIError struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Data    interface{} `json:"data"`
}

func successResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func countedResponse(data interface{}, total int64) APIResponse {
	return APIResponse{Success: true, Data: data, Meta: Meta{Total: total}}
}

func pagedResponse(data interface{}, total, limit, offset int64) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Meta:    Meta{Total: total, Limit: &limit, Offset: &offset},
	}
}

func errorResponse(message string) APIError {
	return APIError{Success: false, Error: message, Data: nil}
}
