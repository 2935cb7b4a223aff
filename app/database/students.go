package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sala-admin/app/models"
)

// StudentFilters represents filtering options for the students table.
// Filter state travels with the request; nothing here is cached
// process-wide.
type StudentFilters struct {
	Search    string
	Status    string // "active", "inactive", "all"
	ClassName string
	Gender    string
	DateFrom  string
	DateTo    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const studentColumns = `s.id, s.student_code, s.first_name, s.last_name, s.khmer_name,
	s.gender, s.date_of_birth, s.phone, s.guardian_name, s.guardian_phone,
	s.class_name, s.photo_url, s.enrolled_at,
	s.tuition_fee, s.material_fee, s.admin_fee, s.discount_amount,
	s.discount_percent, s.initial_payment, s.due_date, s.payment_status,
	s.is_active, s.created_at, s.updated_at`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var dob sql.NullTime
	err := scanner.Scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.KhmerName,
		&s.Gender, &dob, &s.Phone, &s.GuardianName, &s.GuardianPhone,
		&s.ClassName, &s.PhotoURL, &s.EnrolledAt,
		&s.TuitionFee, &s.MaterialFee, &s.AdminFee, &s.DiscountAmount,
		&s.DiscountPercent, &s.InitialPayment, &s.DueDate, &s.PaymentStatus,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		s.DateOfBirth = &dob.Time
	}
	return s, nil
}

// GetStudentsWithInstallments returns students matching the filters along
// with their installments, plus the unpaginated match count.
func GetStudentsWithInstallments(db *sql.DB, f StudentFilters) ([]*models.Student, int, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.deleted_at IS NULL`
	countQuery := `SELECT COUNT(*) FROM students s WHERE s.deleted_at IS NULL`

	var conditions []string
	var args []interface{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	switch f.Status {
	case "", "active":
		conditions = append(conditions, "s.is_active = true")
	case "inactive":
		conditions = append(conditions, "s.is_active = false")
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		add(`(LOWER(s.first_name) LIKE $%[1]d OR LOWER(s.last_name) LIKE $%[1]d
			OR LOWER(s.first_name || ' ' || s.last_name) LIKE $%[1]d
			OR LOWER(s.student_code) LIKE $%[1]d OR s.khmer_name LIKE $%[1]d)`, pattern)
	}
	if f.ClassName != "" {
		add("s.class_name = $%d", f.ClassName)
	}
	if f.Gender != "" {
		add("s.gender = $%d", f.Gender)
	}
	if f.DateFrom != "" {
		add("s.enrolled_at >= $%d", f.DateFrom)
	}
	if f.DateTo != "" {
		add("s.enrolled_at <= $%d", f.DateTo)
	}

	for _, cond := range conditions {
		query += " AND " + cond
		countQuery += " AND " + cond
	}

	var totalCount int
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY " + studentSortColumn(f.SortBy) + " " + sortDirection(f.SortOrder)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	byID := map[string]*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, s)
		byID[s.ID] = s
	}

	if err := attachInstallments(db, byID); err != nil {
		return nil, 0, err
	}
	return students, totalCount, nil
}

// studentSortColumn whitelists sortable columns so caller input never
// reaches the SQL.
func studentSortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "s.first_name"
	case "class_name":
		return "s.class_name"
	case "enrolled_at":
		return "s.enrolled_at"
	case "created_at":
		return "s.created_at"
	default:
		return "s.student_code"
	}
}

func sortDirection(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}
	return "ASC"
}

func attachInstallments(db *sql.DB, byID map[string]*models.Student) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]string, 0, len(byID))
	placeholders := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(ids)))
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, student_id, amount, paid_amount, paid, status,
		date, note, receiver, COALESCE(receipt_no, ''), created_at, updated_at
		FROM installments
		WHERE deleted_at IS NULL AND student_id IN (%s)
		ORDER BY created_at`, strings.Join(placeholders, ","))

	rows, err := db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		inst := &models.Installment{}
		err := rows.Scan(&inst.ID, &inst.StudentID, &inst.Amount, &inst.PaidAmount,
			&inst.Paid, &inst.Status, &inst.Date, &inst.Note, &inst.Receiver,
			&inst.ReceiptNo, &inst.CreatedAt, &inst.UpdatedAt)
		if err != nil {
			continue
		}
		if s, ok := byID[inst.StudentID]; ok {
			s.Installments = append(s.Installments, inst)
		}
	}
	return nil
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1 AND s.deleted_at IS NULL`
	s, err := scanStudent(db.QueryRow(query, id))
	if err != nil {
		return nil, err
	}
	if err := attachInstallments(db, map[string]*models.Student{s.ID: s}); err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_code, first_name, last_name, khmer_name,
		gender, date_of_birth, phone, guardian_name, guardian_phone, class_name,
		photo_url, enrolled_at, tuition_fee, material_fee, admin_fee,
		discount_amount, discount_percent, initial_payment, due_date, payment_status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		s.StudentCode, s.FirstName, s.LastName, s.KhmerName,
		s.Gender, s.DateOfBirth, s.Phone, s.GuardianName, s.GuardianPhone, s.ClassName,
		s.PhotoURL, s.EnrolledAt, s.TuitionFee, s.MaterialFee, s.AdminFee,
		s.DiscountAmount, s.DiscountPercent, s.InitialPayment, s.DueDate, s.PaymentStatus,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET first_name = $1, last_name = $2, khmer_name = $3,
		gender = $4, date_of_birth = $5, phone = $6, guardian_name = $7,
		guardian_phone = $8, class_name = $9, photo_url = $10,
		tuition_fee = $11, material_fee = $12, admin_fee = $13,
		discount_amount = $14, discount_percent = $15, initial_payment = $16,
		due_date = $17, payment_status = $18, updated_at = NOW()
		WHERE id = $19 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		s.FirstName, s.LastName, s.KhmerName, s.Gender, s.DateOfBirth, s.Phone,
		s.GuardianName, s.GuardianPhone, s.ClassName, s.PhotoURL,
		s.TuitionFee, s.MaterialFee, s.AdminFee, s.DiscountAmount,
		s.DiscountPercent, s.InitialPayment, s.DueDate, s.PaymentStatus, s.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func SoftDeleteStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE students SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// SetStudentActive flags a student active or dropped out.
func SetStudentActive(db *sql.DB, id string, active bool) error {
	result, err := db.Exec(`UPDATE students SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL`, active, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// SetStudentLegacyStatus stamps the legacy free-text payment status column.
func SetStudentLegacyStatus(db *sql.DB, id, status string) error {
	_, err := db.Exec(`UPDATE students SET payment_status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL`, status, id)
	return err
}

// NextStudentCode generates the next sequential code like STU-2026-0042.
func NextStudentCode(db *sql.DB, now time.Time) (string, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students
		WHERE student_code LIKE $1`, fmt.Sprintf("STU-%d-%%", now.Year())).Scan(&count)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("STU-%d-%04d", now.Year(), count+1), nil
}
