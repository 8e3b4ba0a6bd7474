package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rsclarke/wgprov/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateIssuance(t *testing.T) {
	db := openTestDB(t)

	iss := &models.Issuance{
		Username:            "alice",
		Token:               "ABCDEFGHIJ",
		PasswordFingerprint: "deadbeef",
		IndexPolicy:         "uniform",
	}
	id, err := CreateIssuance(db, iss)
	if err != nil {
		t.Fatalf("CreateIssuance failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a UUID: %v", id, err)
	}
	if iss.ID != id {
		t.Errorf("iss.ID = %q, want %q", iss.ID, id)
	}
	if iss.IssuedAt == 0 {
		t.Error("IssuedAt was not set")
	}

	got, err := GetIssuanceByToken(db, "ABCDEFGHIJ")
	if err != nil {
		t.Fatalf("GetIssuanceByToken failed: %v", err)
	}
	if got == nil {
		t.Fatal("issuance not found")
	}
	if *got != *iss {
		t.Errorf("GetIssuanceByToken = %+v, want %+v", *got, *iss)
	}
}

func TestCreateIssuanceDuplicateToken(t *testing.T) {
	db := openTestDB(t)

	iss := models.Issuance{Username: "alice", Token: "AAAAAAAAAA", PasswordFingerprint: "x", IndexPolicy: "uniform"}
	if _, err := CreateIssuance(db, &iss); err != nil {
		t.Fatalf("CreateIssuance failed: %v", err)
	}
	dup := models.Issuance{Username: "bob", Token: "AAAAAAAAAA", PasswordFingerprint: "y", IndexPolicy: "uniform"}
	if _, err := CreateIssuance(db, &dup); err == nil {
		t.Error("expected error inserting duplicate token")
	}
}

func TestGetIssuanceByTokenNotFound(t *testing.T) {
	db := openTestDB(t)

	got, err := GetIssuanceByToken(db, "NOPE")
	if err != nil {
		t.Fatalf("GetIssuanceByToken failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestListIssuances(t *testing.T) {
	db := openTestDB(t)

	seed := []models.Issuance{
		{Username: "alice", Token: "AAAAAAAAAA", IssuedAt: 100},
		{Username: "bob", Token: "BBBBBBBBBB", IssuedAt: 200},
		{Username: "alice", Token: "CCCCCCCCCC", IssuedAt: 300},
	}
	for i := range seed {
		seed[i].PasswordFingerprint = "fp"
		seed[i].IndexPolicy = "uniform"
		if _, err := CreateIssuance(db, &seed[i]); err != nil {
			t.Fatalf("CreateIssuance failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		username string
		limit    int
		want     []string
	}{
		{"all", "", 0, []string{"CCCCCCCCCC", "BBBBBBBBBB", "AAAAAAAAAA"}},
		{"by user", "alice", 0, []string{"CCCCCCCCCC", "AAAAAAAAAA"}},
		{"limited", "", 2, []string{"CCCCCCCCCC", "BBBBBBBBBB"}},
		{"unknown user", "carol", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListIssuances(db, tt.username, tt.limit)
			if err != nil {
				t.Fatalf("ListIssuances failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d issuances, want %d", len(got), len(tt.want))
			}
			for i, iss := range got {
				if iss.Token != tt.want[i] {
					t.Errorf("issuance[%d].Token = %q, want %q", i, iss.Token, tt.want[i])
				}
			}
		})
	}
}

func TestLedgerRecord(t *testing.T) {
	db := openTestDB(t)
	ledger := &Ledger{DB: db}

	iss := &models.Issuance{Username: "alice", Token: "QWERTYUIOP", PasswordFingerprint: "fp", IndexPolicy: "legacy"}
	if err := ledger.Record(iss); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := GetIssuanceByToken(db, "QWERTYUIOP")
	if err != nil {
		t.Fatalf("GetIssuanceByToken failed: %v", err)
	}
	if got == nil || got.IndexPolicy != "legacy" {
		t.Errorf("recorded issuance = %+v", got)
	}
}
