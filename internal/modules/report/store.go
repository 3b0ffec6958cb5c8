// README: Fraud report and audit-log store backed by PostgreSQL.
package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) InsertFraudReport(ctx context.Context, r *FraudReport) (*FraudReport, error) {
	if r.Severity == "" {
		r.Severity = SeverityMedium
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO fraud_reports (user_id, mechanic_id, booking_id, reason, description, severity, evidence_images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at`,
		r.UserID, r.MechanicID, r.BookingID, r.Reason, r.Description, r.Severity, r.EvidenceImages,
	)
	out := *r
	if err := row.Scan(&out.ID, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) ListFraudReports(ctx context.Context) ([]FraudReport, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, mechanic_id, booking_id, reason, description, status, severity,
		       evidence_images, created_at, updated_at, resolved_at, resolved_by, resolution_notes
		FROM fraud_reports
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []FraudReport
	for rows.Next() {
		var r FraudReport
		if err := rows.Scan(&r.ID, &r.UserID, &r.MechanicID, &r.BookingID, &r.Reason, &r.Description,
			&r.Status, &r.Severity, &r.EvidenceImages, &r.CreatedAt, &r.UpdatedAt,
			&r.ResolvedAt, &r.ResolvedBy, &r.ResolutionNotes); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) InsertAudit(ctx context.Context, e *AuditEntry) (*AuditEntry, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO system_audits (admin_id, action, target_type, target_id, description, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		e.AdminID, e.Action, e.TargetType, e.TargetID, e.Description, e.IPAddress, e.UserAgent,
	)
	out := *e
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) ListAudits(ctx context.Context) ([]AuditEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, admin_id, action, target_type, target_id, description, ip_address, user_agent, created_at
		FROM system_audits
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.Action, &e.TargetType, &e.TargetID,
			&e.Description, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
