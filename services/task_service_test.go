package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"taskforge/taskforge/models"
	"taskforge/taskforge/testutils"
)

func taskColumns() []string {
	return []string{"id", "name", "description", "category_id", "due_date", "priority", "estimated_time", "status", "attachment", "recurrence", "project_id", "user_id"}
}

func TestCreateTask_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE user_id = \$1 AND status != \$2`).
		WithArgs(uint(7), models.StatusCompleted, 1).
		WillReturnRows(sqlmock.NewRows(taskColumns()))
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	taskService := &TaskService{}
	input := TaskInput{Name: "Write report", CategoryID: 1, DueDate: "2026-09-10"}

	task, err := taskService.CreateTask(db, input, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.StatusNotStarted, task.Status)
	assert.Equal(t, models.RecurrenceNone, task.Recurrence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_InvalidCategory(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WithArgs(uint(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	taskService := &TaskService{}
	_, err := taskService.CreateTask(db, TaskInput{Name: "Orphan", CategoryID: 99}, 7)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_PendingTaskExists(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE user_id = \$1 AND status != \$2`).
		WithArgs(uint(7), models.StatusCompleted, 1).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(3, "Old task", "", 1, "2026-08-01", "medium", 2, models.StatusNotStarted, "", "none", 0, 7))
	mock.ExpectRollback()

	taskService := &TaskService{}
	_, err := taskService.CreateTask(db, TaskInput{Name: "Second", CategoryID: 1}, 7)
	assert.ErrorIs(t, err, ErrPendingTaskExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskById_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE id = \$1`).
		WithArgs("42", 1).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	taskService := &TaskService{}
	_, err := taskService.GetTaskById(db, "42")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterTasks_BindsEveryProvidedField(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE name ILIKE \$1 AND status = \$2 AND priority = \$3 AND due_date = \$4 AND category_id = \$5`).
		WithArgs("%report%", "not started", "high", "2026-09-10", uint(2)).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(1, "Quarterly report", "", 2, "2026-09-10", "high", 4, "not started", "", "none", 0, 7))

	taskService := &TaskService{}
	tasks, err := taskService.FilterTasks(db, TaskFilter{
		Name:       "report",
		Status:     "not started",
		Priority:   "high",
		DueDate:    "2026-09-10",
		CategoryID: 2,
	})
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterTasks_EmptyResultIsNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE status = \$1`).
		WithArgs("archived").
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	taskService := &TaskService{}
	_, err := taskService.FilterTasks(db, TaskFilter{Status: "archived"})
	assert.ErrorIs(t, err, ErrNoTasksFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTasks_MatchesSubstrings(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE name ILIKE \$1 AND description ILIKE \$2`).
		WithArgs("%plan%", "%budget%").
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(1, "Planning", "budget review", 1, "2026-09-10", "medium", 1, "not started", "", "none", 0, 7))

	taskService := &TaskService{}
	tasks, err := taskService.SearchTasks(db, TaskSearch{Name: "plan", Description: "budget"})
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSortTasks_RejectsUnknownField(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.SortTasks(db, "hacked; DROP TABLE tasks", "asc")
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestSortTasks_RejectsUnknownOrder(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.SortTasks(db, "name", "sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestSortTasks_OrderIsCaseInsensitive(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" ORDER BY name DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(2, "Zeta", "", 1, "", "medium", 1, "not started", "", "none", 0, 7).
			AddRow(1, "Alpha", "", 1, "", "medium", 1, "not started", "", "none", 0, 7))

	taskService := &TaskService{}
	tasks, err := taskService.SortTasks(db, "name", "DeSc")
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "Zeta", tasks[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSortTasks_EmptyTableIsNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	taskService := &TaskService{}
	_, err := taskService.SortTasks(db, "", "")
	assert.ErrorIs(t, err, ErrNoTasksFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTask_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "tasks" WHERE id = \$1`).
		WithArgs("5", 1).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(5, "Done soon", "", 1, "2026-09-01", "medium", 1, "completed", "", "none", 0, 7))
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	taskService := &TaskService{}
	task, err := taskService.DeleteTask(db, "5")
	assert.NoError(t, err)
	assert.Equal(t, "Done soon", task.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
