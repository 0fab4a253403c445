package services

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"taskforge/taskforge/testutils"
)

func TestCreateProject_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`INSERT INTO "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	projectService := NewProjectService(&testutils.MockMailer{})
	project, err := projectService.CreateProject(db, "Launch", "Q4 launch plan", 7)
	assert.NoError(t, err)
	assert.Equal(t, "Launch", project.Name)
	assert.Equal(t, uint(7), project.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareProject_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = \$1`).
		WithArgs(uint(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	projectService := NewProjectService(&testutils.MockMailer{})
	_, _, err := projectService.ShareProject(db, 42, []uint{2})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareProject_IdempotentPerUser(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = \$1`).
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_by"}).
			AddRow(1, "Launch", "", 7))

	// User 2 already has a share: no insert, email still sent.
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(uint(2), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(2, "Grace", "grace@example.com"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "project_shares"`).
		WithArgs(uint(1), uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// User 3 is new: share inserted, email sent.
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(uint(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(3, "Linus", "linus@example.com"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "project_shares"`).
		WithArgs(uint(1), uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "project_shares"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	mailer := &testutils.MockMailer{}
	projectService := NewProjectService(mailer)

	shared, skipped, err := projectService.ShareProject(db, 1, []uint{2, 3})
	assert.NoError(t, err)
	assert.Len(t, shared, 2)
	assert.Empty(t, skipped)
	assert.Len(t, mailer.Sent, 2)
	assert.Equal(t, "grace@example.com", mailer.Sent[0].To)
	assert.Equal(t, "linus@example.com", mailer.Sent[1].To)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareProject_SkipsUnknownUsers(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = \$1`).
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_by"}).
			AddRow(1, "Launch", "", 7))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(uint(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	mailer := &testutils.MockMailer{}
	projectService := NewProjectService(mailer)

	shared, skipped, err := projectService.ShareProject(db, 1, []uint{99})
	assert.NoError(t, err)
	assert.Empty(t, shared)
	assert.Equal(t, []uint{99}, skipped)
	assert.Empty(t, mailer.Sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareProject_EmailFailureDoesNotFailShare(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = \$1`).
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_by"}).
			AddRow(1, "Launch", "", 7))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(uint(2), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(2, "Grace", "grace@example.com"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "project_shares"`).
		WithArgs(uint(1), uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "project_shares"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	mailer := &testutils.MockMailer{Err: errors.New("smtp down")}
	projectService := NewProjectService(mailer)

	shared, _, err := projectService.ShareProject(db, 1, []uint{2})
	assert.NoError(t, err)
	assert.Len(t, shared, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
