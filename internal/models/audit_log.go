package models

// AuditLog records write operations against funds, investors and investments.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null;index:idx_audit_logs_resource" json:"resource_type"`
	ResourceID   string `gorm:"type:uuid;index:idx_audit_logs_resource" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	RequestID    string `gorm:"index" json:"request_id,omitempty"`
	Changes      string `json:"changes,omitempty"`
}
