package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rsclarke/wgprov/internal/models"
)

// CreateIssuance inserts iss, filling in ID and IssuedAt when unset, and
// returns the ID it was stored under.
func CreateIssuance(d *sql.DB, iss *models.Issuance) (string, error) {
	if iss.ID == "" {
		iss.ID = uuid.NewString()
	}
	if iss.IssuedAt == 0 {
		iss.IssuedAt = time.Now().Unix()
	}
	_, err := d.Exec(
		`INSERT INTO issuances (id, username, token, password_fingerprint, index_policy, issued_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		iss.ID, iss.Username, iss.Token, iss.PasswordFingerprint, iss.IndexPolicy, iss.IssuedAt,
	)
	if err != nil {
		return "", err
	}
	return iss.ID, nil
}

// GetIssuanceByToken returns the issuance for token, or nil if there is none.
func GetIssuanceByToken(d *sql.DB, token string) (*models.Issuance, error) {
	row := d.QueryRow(
		`SELECT id, username, token, password_fingerprint, index_policy, issued_at
		FROM issuances WHERE token = ?`,
		token,
	)
	var iss models.Issuance
	err := row.Scan(&iss.ID, &iss.Username, &iss.Token, &iss.PasswordFingerprint, &iss.IndexPolicy, &iss.IssuedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &iss, nil
}

// ListIssuances returns issuances newest first. An empty username lists every
// user; limit <= 0 means no limit.
func ListIssuances(d *sql.DB, username string, limit int) ([]models.Issuance, error) {
	query := `SELECT id, username, token, password_fingerprint, index_policy, issued_at FROM issuances`
	var args []any
	if username != "" {
		query += " WHERE username = ?"
		args = append(args, username)
	}
	query += " ORDER BY issued_at DESC, rowid DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Issuance
	for rows.Next() {
		var iss models.Issuance
		if err := rows.Scan(&iss.ID, &iss.Username, &iss.Token, &iss.PasswordFingerprint, &iss.IndexPolicy, &iss.IssuedAt); err != nil {
			return nil, err
		}
		out = append(out, iss)
	}
	return out, rows.Err()
}

// Ledger records issuances into an open database.
type Ledger struct {
	DB *sql.DB
}

func (l *Ledger) Record(iss *models.Issuance) error {
	_, err := CreateIssuance(l.DB, iss)
	return err
}
