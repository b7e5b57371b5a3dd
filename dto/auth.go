package dto

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	StudentID   string `json:"studentId"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	Address     string `json:"address"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthUser thông tin user trả về sau đăng nhập/đăng ký
type AuthUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginResponse là DTO trả về token kèm thông tin user
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// UpdateProfileRequest các field user tự sửa được
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Avatar      *string `json:"avatar"`
	Address     *string `json:"address"`
	ParentName  *string `json:"parentName"`
	ParentPhone *string `json:"parentPhone"`
}

// ChangePasswordRequest là DTO cho request đổi mật khẩu
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
