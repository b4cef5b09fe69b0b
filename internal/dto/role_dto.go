package dto

type SwitchRoleRequest struct {
	Role     string `json:"role"     validate:"required,oneof=doctor patient"`
	Password string `json:"password"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
