package model

// Role is a named group of permissions assigned to users.
type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:255"`
	CreatedAt   int64  `json:"created_at" gorm:"autoCreateTime"`
}

// Permission is a named capability, conventionally "<resource>_<read|add|update|delete>".
type Permission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:255"`
	CreatedAt   int64  `json:"created_at" gorm:"autoCreateTime"`
}

// RolePermission binds a permission to a role. Each (role, permission) pair is stored once.
type RolePermission struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Role       string `json:"role" gorm:"size:50;not null;uniqueIndex:idx_role_permission"`
	Permission string `json:"permission" gorm:"size:100;not null;uniqueIndex:idx_role_permission"`
	CreatedAt  int64  `json:"created_at" gorm:"autoCreateTime"`
}
