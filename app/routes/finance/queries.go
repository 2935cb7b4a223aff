package finance

import (
	"database/sql"
	"time"

	"sala-admin/app/models"
)

func getAllCategories(db *sql.DB) ([]*models.Category, error) {
	query := `SELECT id, name, kind, is_active, created_at, updated_at
			  FROM categories WHERE deleted_at IS NULL ORDER BY kind, name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		cat := &models.Category{}
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Kind, &cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt)
		if err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func getTransactions(db *sql.DB, kind, dateFrom, dateTo string) ([]*models.Transaction, error) {
	query := `SELECT t.id, t.category_id, t.title, t.amount, t.date, t.notes,
			  COALESCE(t.recorded_by::text, ''), t.created_at, t.updated_at,
			  c.id, c.name, c.kind
			  FROM transactions t
			  JOIN categories c ON t.category_id = c.id
			  WHERE t.deleted_at IS NULL`
	var args []interface{}
	add := func(cond string, val interface{}) {
		args = append(args, val)
		query += cond
	}

	if kind != "" {
		add(` AND c.kind = $1`, kind)
	}
	if dateFrom != "" {
		switch len(args) {
		case 0:
			add(` AND t.date >= $1`, dateFrom)
		case 1:
			add(` AND t.date >= $2`, dateFrom)
		}
	}
	if dateTo != "" {
		switch len(args) {
		case 0:
			add(` AND t.date <= $1`, dateTo)
		case 1:
			add(` AND t.date <= $2`, dateTo)
		case 2:
			add(` AND t.date <= $3`, dateTo)
		}
	}
	query += ` ORDER BY t.date DESC, t.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		t := &models.Transaction{Category: &models.Category{}}
		err := rows.Scan(&t.ID, &t.CategoryID, &t.Title, &t.Amount, &t.Date, &t.Notes,
			&t.RecordedBy, &t.CreatedAt, &t.UpdatedAt,
			&t.Category.ID, &t.Category.Name, &t.Category.Kind)
		if err != nil {
			continue
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// monthlySummary aggregates income and expense for the month containing ref.
type monthlySummary struct {
	Income     float64            `json:"income"`
	Expense    float64            `json:"expense"`
	Net        float64            `json:"net"`
	ByCategory map[string]float64 `json:"by_category"`
}

func getMonthlySummary(db *sql.DB, ref time.Time) (*monthlySummary, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `SELECT c.name, c.kind, COALESCE(SUM(t.amount), 0)
			  FROM transactions t
			  JOIN categories c ON t.category_id = c.id
			  WHERE t.deleted_at IS NULL AND t.date >= $1 AND t.date < $2
			  GROUP BY c.name, c.kind`

	rows, err := db.Query(query, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &monthlySummary{ByCategory: map[string]float64{}}
	for rows.Next() {
		var name string
		var kind models.CategoryKind
		var total float64
		if err := rows.Scan(&name, &kind, &total); err != nil {
			continue
		}
		summary.ByCategory[name] = total
		if kind == models.IncomeCategory {
			summary.Income += total
		} else {
			summary.Expense += total
		}
	}
	summary.Net = summary.Income - summary.Expense
	return summary, nil
}
