package model

import "time"

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Phone        string `gorm:"type:varchar(64);not null" json:"phone"`
	Address      string `gorm:"type:text;not null" json:"address"`

	// パスワードリセット用の秘密の答え。
	Answer string `gorm:"type:varchar(255);not null" json:"-"`
	DOB    string `gorm:"type:varchar(32)" json:"dob"`

	Role int `gorm:"not null;default:0" json:"role"` // 0=user 1=admin

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
