// README: Fraud report and audit-log entities (admin bookkeeping).
package report

import (
	"time"

	"mechmatch/internal/types"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

type FraudReport struct {
	ID              types.ID
	UserID          types.ID
	MechanicID      types.ID
	BookingID       *types.ID
	Reason          string
	Description     *string
	Status          string
	Severity        string
	EvidenceImages  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
	ResolvedBy      *types.ID
	ResolutionNotes *string
}

type AuditEntry struct {
	ID          types.ID
	AdminID     *types.ID
	Action      string
	TargetType  *string
	TargetID    *types.ID
	Description *string
	IPAddress   *string
	UserAgent   *string
	CreatedAt   time.Time
}
