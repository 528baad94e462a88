package postgres

import (
    "context"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"

    "xeni/internal/domain"
    "xeni/internal/ports"
)

var (
    _ ports.CaseRepository     = (*DB)(nil)
    _ ports.DocumentRepository = (*DB)(nil)
    _ ports.IssueRepository    = (*DB)(nil)
    _ ports.SnapshotRepository = (*DB)(nil)
)

// CaseRepository
func (db *DB) GetCase(ctx context.Context, caseID string) (domain.Case, error) {
    var c domain.Case
    err := db.Pool.QueryRow(ctx, `
        SELECT id, reference, visa_type, advisor, status, passport, client, deadline, stats, updated_at
        FROM cases WHERE id = $1
    `, caseID).Scan(&c.ID, &c.Reference, &c.VisaType, &c.Advisor, &c.Status,
        &c.Passport, &c.Client, &c.Deadline, &c.Stats, &c.UpdatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return c, ports.ErrNotFound
    }
    return c, err
}

// DocumentRepository
func (db *DB) ListDocuments(ctx context.Context, caseID string) ([]domain.Document, error) {
    rows, err := db.Pool.Query(ctx, `
        SELECT id, case_id, name, file_name, pipeline_status, size_bytes, extracted_data, assigned_to_slots, uploaded_at
        FROM documents WHERE case_id = $1
        ORDER BY uploaded_at, id
    `, caseID)
    if err != nil {
        return nil, err
    }
    return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
        var d domain.Document
        err := row.Scan(&d.ID, &d.CaseID, &d.Name, &d.FileName, &d.PipelineStatus, &d.Size,
            &d.ExtractedData, &d.AssignedToSlots, &d.UploadedAt)
        return d, err
    })
}

// IssueRepository
const issueColumns = `id, case_id, type, severity, status, title, description, conflict_details,
    target_slot_id, document_ids, ai_recommendation, created_at, resolved_at`

func scanIssue(row pgx.Row) (domain.Issue, error) {
    var is domain.Issue
    err := row.Scan(&is.ID, &is.CaseID, &is.Type, &is.Severity, &is.Status, &is.Title, &is.Description,
        &is.ConflictDetails, &is.TargetSlotID, &is.DocumentIDs, &is.AIRecommendation, &is.CreatedAt, &is.ResolvedAt)
    return is, err
}

func (db *DB) ListIssues(ctx context.Context, caseID string) ([]domain.Issue, error) {
    rows, err := db.Pool.Query(ctx, `SELECT `+issueColumns+` FROM issues WHERE case_id = $1 ORDER BY created_at, id`, caseID)
    if err != nil {
        return nil, err
    }
    return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Issue, error) { return scanIssue(row) })
}

func (db *DB) GetIssue(ctx context.Context, issueID string) (domain.Issue, error) {
    is, err := scanIssue(db.Pool.QueryRow(ctx, `SELECT `+issueColumns+` FROM issues WHERE id = $1`, issueID))
    if errors.Is(err, pgx.ErrNoRows) {
        return is, ports.ErrNotFound
    }
    return is, err
}

// MarkResolved only ever transitions open rows; a resolved issue is left as is.
// The owning case's updated_at moves in the same statement.
func (db *DB) MarkResolved(ctx context.Context, issueID string, at time.Time) (bool, error) {
    tag, err := db.Pool.Exec(ctx, `
        WITH resolved AS (
            UPDATE issues SET status = 'resolved', resolved_at = $2
            WHERE id = $1 AND status = 'open'
            RETURNING case_id
        )
        UPDATE cases SET updated_at = now()
        FROM resolved WHERE cases.id = resolved.case_id
    `, issueID, at)
    if err != nil {
        return false, err
    }
    if tag.RowsAffected() == 1 {
        return true, nil
    }
    var exists bool
    if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM issues WHERE id = $1)`, issueID).Scan(&exists); err != nil {
        return false, err
    }
    if !exists {
        return false, ports.ErrNotFound
    }
    return false, nil
}

// SnapshotRepository
func (db *DB) SaveSnapshot(ctx context.Context, s ports.Snapshot) error {
    _, err := db.Pool.Exec(ctx, `
        INSERT INTO health_snapshots (case_id, score, tier, responsibility, fingerprint, computed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, s.CaseID, s.Score, s.Tier, s.Responsibility, s.Fingerprint, s.ComputedAt)
    return err
}

func (db *DB) LatestSnapshot(ctx context.Context, caseID string) (ports.Snapshot, bool, error) {
    var s ports.Snapshot
    err := db.Pool.QueryRow(ctx, `
        SELECT id::text, case_id, score, tier, responsibility, fingerprint, computed_at
        FROM health_snapshots WHERE case_id = $1
        ORDER BY computed_at DESC LIMIT 1
    `, caseID).Scan(&s.ID, &s.CaseID, &s.Score, &s.Tier, &s.Responsibility, &s.Fingerprint, &s.ComputedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return s, false, nil
    }
    if err != nil {
        return s, false, err
    }
    return s, true, nil
}

// SeedBundle upserts a case bundle. Used by the serve command to load fixtures.
func (db *DB) SeedBundle(ctx context.Context, b domain.CaseBundle) (err error) {
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { err = tx.Commit(ctx) }
    }()

    c := b.Case
    if _, err = tx.Exec(ctx, `
        INSERT INTO cases (id, reference, visa_type, advisor, status, passport, client, deadline, stats, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
        ON CONFLICT (id) DO UPDATE SET reference = EXCLUDED.reference, visa_type = EXCLUDED.visa_type,
            advisor = EXCLUDED.advisor, status = EXCLUDED.status, passport = EXCLUDED.passport,
            client = EXCLUDED.client, deadline = EXCLUDED.deadline, stats = EXCLUDED.stats, updated_at = now()
    `, c.ID, c.Reference, c.VisaType, c.Advisor, c.Status, c.Passport, c.Client, c.Deadline, c.Stats); err != nil {
        return err
    }
    for _, d := range b.Documents {
        slots := d.AssignedToSlots
        if slots == nil { slots = []string{} }
        if _, err = tx.Exec(ctx, `
            INSERT INTO documents (id, case_id, name, file_name, pipeline_status, size_bytes, extracted_data, assigned_to_slots, uploaded_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            ON CONFLICT (id) DO UPDATE SET pipeline_status = EXCLUDED.pipeline_status,
                assigned_to_slots = EXCLUDED.assigned_to_slots, extracted_data = EXCLUDED.extracted_data
        `, d.ID, c.ID, d.Name, d.FileName, d.PipelineStatus, d.Size, nonNilMap(d.ExtractedData), slots, d.UploadedAt); err != nil {
            return err
        }
    }
    for _, is := range b.Issues {
        docs := is.DocumentIDs
        if docs == nil { docs = []string{} }
        if _, err = tx.Exec(ctx, `
            INSERT INTO issues (`+issueColumns+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
            ON CONFLICT (id) DO NOTHING
        `, is.ID, c.ID, is.Type, is.Severity, is.Status, is.Title, is.Description, is.ConflictDetails,
            is.TargetSlotID, docs, is.AIRecommendation, is.CreatedAt, is.ResolvedAt); err != nil {
            return err
        }
    }
    return nil
}

func nonNilMap(m map[string]string) map[string]string {
    if m == nil {
        return map[string]string{}
    }
    return m
}
