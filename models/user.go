package models

type User struct {
	ID    string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
