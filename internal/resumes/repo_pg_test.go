package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder/internal/profile"
)

func TestPGCreateGenerationCommitsOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO education").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO experience").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO skills").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO resumes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	err = repo.CreateGeneration(context.Background(), Generation{
		Resume: Resume{ID: "r1", UserID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@eagles.oc.edu"},
		Education: []profile.Education{
			{ID: "ed1", UserID: "u1", Email: "ada@eagles.oc.edu", Degree: "BS", Institution: "OC"},
		},
		Experience: []profile.Experience{
			{ID: "ex1", UserID: "u1", Email: "ada@eagles.oc.edu", Company: "Acme", Role: "Engineer"},
		},
		Skills: []profile.Skill{
			{ID: "s1", UserID: "u1", Email: "ada@eagles.oc.edu", Name: "Go", Proficiency: "expert"},
		},
	})
	if err != nil {
		t.Fatalf("CreateGeneration: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGCreateGenerationRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO experience").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	repo := &PGRepo{DB: db}
	err = repo.CreateGeneration(context.Background(), Generation{
		Resume: Resume{ID: "r1", UserID: "u1"},
		Experience: []profile.Experience{
			{ID: "ex1", UserID: "u1", Company: "Acme", Role: "Engineer"},
		},
	})
	if err == nil {
		t.Fatal("expected insert failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGLatestByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "first_name", "last_name", "email", "phone",
		"linked_url", "education", "experience", "skills", "artifact_key", "created_at",
	}).AddRow("r1", "u1", "Ada", "Lovelace", "ada@eagles.oc.edu", "555-0100",
		"", "BS from OC (2019 to 2023)", "", "Go:expert", "resumes/abc/r1.pdf", created)
	mock.ExpectQuery("SELECT (.+) FROM resumes WHERE user_id").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	res, err := repo.LatestByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}
	if res.ID != "r1" || res.ArtifactKey != "resumes/abc/r1.pdf" {
		t.Fatalf("unexpected resume: %+v", res)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGUpdateScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	res := Resume{
		ID: "r1", UserID: "u1", FirstName: "Ada", LastName: "King",
		Email: "ada@eagles.oc.edu", Phone: "555-0199",
		LinkedURL: "https://linkedin.com/in/ada-king", Skills: "Go:expert",
	}

	mock.ExpectExec("UPDATE resumes SET first_name").
		WithArgs(res.ID, res.UserID, res.FirstName, res.LastName, res.Email, res.Phone, res.LinkedURL, res.Skills).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Update(context.Background(), res); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// A row owned by someone else matches nothing.
	res.UserID = "u2"
	mock.ExpectExec("UPDATE resumes SET first_name").
		WithArgs(res.ID, res.UserID, res.FirstName, res.LastName, res.Email, res.Phone, res.LinkedURL, res.Skills).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Update(context.Background(), res); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGAttachArtifactNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE resumes SET artifact_key").
		WithArgs("missing", "resumes/abc/x.pdf").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.AttachArtifact(context.Background(), "missing", "resumes/abc/x.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
