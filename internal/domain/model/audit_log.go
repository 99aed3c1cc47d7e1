package model

import "time"

type AuditAction string

const (
	AuditActionCreateProduct AuditAction = "CREATE_PRODUCT"
	AuditActionUpdateProduct AuditAction = "UPDATE_PRODUCT"
	AuditActionDeleteProduct AuditAction = "DELETE_PRODUCT"
)

type AuditResource string

const (
	AuditResourceProduct AuditResource = "PRODUCT"
)

// 「誰が」「何を」「どの対象に」やったかを残す
type AuditLog struct {
	ID           int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID  string        `gorm:"type:varchar(255);not null;index" json:"actor_user_id"`
	Action       AuditAction   `gorm:"type:varchar(50);not null" json:"action"`
	ResourceType AuditResource `gorm:"type:varchar(50);not null" json:"resource_type"`
	ResourceID   string        `gorm:"type:uuid;not null" json:"resource_id"`
	CreatedAt    time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
