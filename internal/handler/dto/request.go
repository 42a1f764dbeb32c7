package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type SubmitBookingRequest struct {
	Type      string `json:"type"       binding:"required,oneof=room equipment"`
	ItemID    string `json:"item_id"    binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"   binding:"required"`
	Purpose   string `json:"purpose"    binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status"           binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

type CreateUserRequest struct {
	Name           string `json:"name"     binding:"required"`
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
