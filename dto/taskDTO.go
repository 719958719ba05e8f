package dto

type CreateTaskRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SearchRequest struct {
	Term string `json:"term"`
}
