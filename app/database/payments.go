package database

import (
	"database/sql"

	"sala-admin/app/models"
)

func GetInstallmentsByStudent(db *sql.DB, studentID string) ([]*models.Installment, error) {
	query := `SELECT id, student_id, amount, paid_amount, paid, status, date, note,
			  receiver, COALESCE(receipt_no, ''), created_at, updated_at
			  FROM installments
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	installments := []*models.Installment{}
	for rows.Next() {
		inst := &models.Installment{}
		err := rows.Scan(&inst.ID, &inst.StudentID, &inst.Amount, &inst.PaidAmount,
			&inst.Paid, &inst.Status, &inst.Date, &inst.Note, &inst.Receiver,
			&inst.ReceiptNo, &inst.CreatedAt, &inst.UpdatedAt)
		if err != nil {
			continue
		}
		installments = append(installments, inst)
	}
	return installments, nil
}

func CreateInstallment(db *sql.DB, inst *models.Installment) error {
	query := `INSERT INTO installments (student_id, amount, paid_amount, paid, status,
			  date, note, receiver, receipt_no)
			  VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, inst.StudentID, inst.Amount, inst.PaidAmount, inst.Paid,
		inst.Status, inst.Date, inst.Note, inst.Receiver, inst.ReceiptNo).
		Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
}

func DeleteInstallment(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE installments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// RecentInstallments returns the latest paid installments with student names
// for the dashboard feed.
func RecentInstallments(db *sql.DB, limit int) ([]*models.Installment, error) {
	query := `SELECT i.id, i.student_id, i.amount, i.paid_amount, i.paid, i.status,
			  i.date, i.note, i.receiver, COALESCE(i.receipt_no, ''), i.created_at, i.updated_at,
			  s.first_name, s.last_name, s.student_code
			  FROM installments i
			  JOIN students s ON i.student_id = s.id
			  WHERE i.deleted_at IS NULL AND s.deleted_at IS NULL
			  ORDER BY i.created_at DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	installments := []*models.Installment{}
	for rows.Next() {
		inst := &models.Installment{Student: &models.Student{}}
		err := rows.Scan(&inst.ID, &inst.StudentID, &inst.Amount, &inst.PaidAmount,
			&inst.Paid, &inst.Status, &inst.Date, &inst.Note, &inst.Receiver,
			&inst.ReceiptNo, &inst.CreatedAt, &inst.UpdatedAt,
			&inst.Student.FirstName, &inst.Student.LastName, &inst.Student.StudentCode)
		if err != nil {
			continue
		}
		installments = append(installments, inst)
	}
	return installments, nil
}
