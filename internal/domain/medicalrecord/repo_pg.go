package medicalrecord

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, patient_id, doctor_id, diagnosis, prescriptions, notes,
	test_results, ongoing_treatments, created_at, updated_at`

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.Diagnosis, &m.Prescriptions,
		&m.Notes, &m.TestResults, &m.OngoingTreatments, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *MedicalRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_records
			(patient_id, doctor_id, diagnosis, prescriptions, notes, test_results, ongoing_treatments)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		m.PatientID, m.DoctorID, m.Diagnosis, m.Prescriptions, m.Notes,
		m.TestResults, m.OngoingTreatments,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	m, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM medical_records WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repoPG) Update(ctx context.Context, m *MedicalRecord) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medical_records
		SET diagnosis = $2, prescriptions = $3, notes = $4, test_results = $5,
			ongoing_treatments = $6, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Diagnosis, m.Prescriptions, m.Notes, m.TestResults, m.OngoingTreatments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordCols+` FROM medical_records
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalRecord
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
