package model

// RoleModel mirrors the 'roles' table. IDs are fixed, not generated.
type RoleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
