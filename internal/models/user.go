package models

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Значения по умолчанию для шапки отчета
const (
	DefaultDepartment = "EDV"
	DefaultProfession = "Fachinformatiker"
)

type User struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	CreatedAt          int64      `json:"created_at"`
	UpdatedAt          int64      `json:"updated_at"`
	ChatID             int64      `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username           string     `json:"username"`
	FirstName          string     `gorm:"not null" json:"first_name"`
	LastName           string     `json:"last_name"`
	Department         string     `json:"department"`
	TrainingProfession string     `json:"training_profession"`
	TrainingStartDate  *time.Time `gorm:"type:date" json:"training_start_date"`
	Role               Role       `gorm:"default:'client'" json:"role"`
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SetRole устанавливает роль
func (u *User) SetRole(role Role) {
	u.Role = role
}

// FullName имя и фамилия через пробел
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) DepartmentOrDefault() string {
	if u.Department == "" {
		return DefaultDepartment
	}
	return u.Department
}

func (u *User) ProfessionOrDefault() string {
	if u.TrainingProfession == "" {
		return DefaultProfession
	}
	return u.TrainingProfession
}

// TrainingYear год обучения: текущий год минус год начала обучения плюс один
func (u *User) TrainingYear(now time.Time) int {
	if u.TrainingStartDate == nil {
		return 1
	}
	return now.Year() - u.TrainingStartDate.Year() + 1
}

// TableName задает имя таблицы в БД
func (User) TableName() string {
	return "users"
}
