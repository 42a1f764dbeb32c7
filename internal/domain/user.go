package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Username       string
	TelegramChatID *int64
}

// CurrentUser хранится в сессии.
type CurrentUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is either anonymous or bound to a current user.
type Session struct {
	user *CurrentUser
}

func NoSession() Session {
	return Session{}
}

func NewSession(u CurrentUser) Session {
	return Session{user: &u}
}

func (s Session) User() (CurrentUser, bool) {
	if s.user == nil || s.user.ID == "" {
		return CurrentUser{}, false
	}
	return *s.user, true
}
