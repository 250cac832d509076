package models

// User represents the user model in the database
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	Categories []Category  `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Expenses   []Expense   `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Incomes    []Income    `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Portfolios []Portfolio `gorm:"foreignKey:UserID" json:"portfolios,omitempty"`
}

// DefaultCategoryNames are the six categories created for every new user.
var DefaultCategoryNames = []string{
	"Food and Drinks",
	"Transport",
	"Groceries",
	"Personal",
	"Services",
	"Miscellaneous",
}
