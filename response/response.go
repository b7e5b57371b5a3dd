package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int64      `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// NewPagination tính số trang từ tổng số bản ghi
func NewPagination(total int64, page, limit int) *Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return &Pagination{Total: total, Page: page, Pages: pages}
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage trả về response thành công kèm message
func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessMessage trả về response thành công chỉ có message
func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// SuccessWithCount trả về response kèm số lượng
func SuccessWithCount(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(total, page, limit),
	})
}

// Created trả về response 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// CreatedWithMessage trả về response 201 kèm message
func CreatedWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized to access this route"
	}
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: message,
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Message: "You do not have permission to perform this action",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Internal server error",
	})
}
