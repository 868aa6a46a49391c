package entities

import (
	"strings"
	"time"
)

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Type      UserType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserType string

const (
	UserVendor          UserType = "vendor"
	UserDeliveryPartner UserType = "delivery"
)

func (t UserType) String() string {
	return string(t)
}

// DisplayName - имя для подстановки в тексты уведомлений:
// first name, если задано, иначе username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	return u.Username
}
