package models

type User struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null"                 json:"name"`
	Email string `gorm:"unique;not null"          json:"email"`
}

type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Description string  `gorm:"default:''"               json:"description"`
	Image       string  `gorm:"default:''"               json:"image"`
}

// UserActivity rows reference users and products by raw id only,
// there is no foreign key constraint on either column.
type UserActivity struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int    `gorm:"index;not null"           json:"user_id"`
	ProductID int    `gorm:"not null"                 json:"product_id"`
	Action    string `gorm:"not null"                 json:"action"`
}
