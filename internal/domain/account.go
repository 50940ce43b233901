package domain

import "time"

type Account struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is a server-issued login token bound to one account. The cookie
// only ever carries Token; everything else stays in the store so logout and
// expiry take effect on the very next request.
type Session struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	AccountID int64     `json:"accountId" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
