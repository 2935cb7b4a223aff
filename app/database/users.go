package database

import (
	"database/sql"

	"sala-admin/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true AND deleted_at IS NULL`
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name FROM roles r
			  JOIN user_roles ur ON r.id = ur.role_id
			  WHERE ur.user_id = $1`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func ListUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, first_name, last_name, phone, is_active, created_at, updated_at
			  FROM users WHERE deleted_at IS NULL ORDER BY first_name, last_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			continue
		}
		roles, err := GetUserRoles(db, u.ID)
		if err == nil {
			u.Roles = roles
		}
		users = append(users, u)
	}
	return users, nil
}

func CreateUser(db *sql.DB, u *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, phone)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, u.Email, u.Password, u.FirstName, u.LastName, u.Phone).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func UpdateUser(db *sql.DB, u *models.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, phone = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`
	result, err := db.Exec(query, u.FirstName, u.LastName, u.Phone, u.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, userID)
	return err
}

func SetUserActive(db *sql.DB, userID string, active bool) error {
	_, err := db.Exec(`UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, userID)
	return err
}

func ListRoles(db *sql.DB) ([]*models.Role, error) {
	rows, err := db.Query(`SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		r := &models.Role{}
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			continue
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// SetUserRoles replaces a user's role assignments.
func SetUserRoles(db *sql.DB, userID string, roleIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
