package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.DefaultCost)
	dob := time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC)
	gender := user.GenderFemale

	newUser := user.User{
		Email:          uniqueEmail("create"),
		PasswordHash:   string(hashedPassword),
		FirstName:      "Ada",
		MiddleName:     strPtr("Ngozi"),
		LastName:       "Obi",
		Gender:         &gender,
		DateOfBirth:    &dob,
		PhoneNumber:    strPtr("+2348031234567"),
		Country:        "Nigeria",
		EmployeeStatus: user.StatusActive,
		ApprovalLevel:  user.LevelStaff,
		DateJoined:     time.Now(),
		IsActive:       true,
	}

	created, err := userRepo.Create(ctx, newUser)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, newUser.Email, created.Email)
	assert.Equal(t, "Ada", created.FirstName)
	require.NotNil(t, created.MiddleName)
	assert.Equal(t, "Ngozi", *created.MiddleName)
	require.NotNil(t, created.Gender)
	assert.Equal(t, user.GenderFemale, *created.Gender)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, dob.Year(), created.DateOfBirth.Year())
	assert.Equal(t, user.LevelStaff, created.ApprovalLevel)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	email := uniqueEmail("dup")
	createTestUser(t, ctx, email)

	userRepo := postgresql.NewUserRepository(testDB)
	_, err := userRepo.Create(ctx, user.User{
		Email:          email,
		PasswordHash:   "x",
		FirstName:      "Other",
		LastName:       "User",
		Country:        "Nigeria",
		EmployeeStatus: user.StatusActive,
		ApprovalLevel:  user.LevelStaff,
		DateJoined:     time.Now(),
		IsActive:       true,
	})

	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "users_email_key", pgErr.ConstraintName)
}

func TestUserRepository_GetByID_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	testUser := createTestUser(t, ctx, uniqueEmail("getbyid"))

	userRepo := postgresql.NewUserRepository(testDB)
	retrieved, err := userRepo.GetByID(ctx, testUser.ID)

	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, retrieved.ID)
	assert.Equal(t, testUser.Email, retrieved.Email)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	_, err := userRepo.GetByID(ctx, uuid.Must(uuid.NewV7()).String())

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_GetByEmail_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	email := uniqueEmail("getbyemail")
	testUser := createTestUser(t, ctx, email)

	userRepo := postgresql.NewUserRepository(testDB)
	retrieved, err := userRepo.GetByEmail(ctx, email)

	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, retrieved.ID)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	_, err := userRepo.GetByEmail(ctx, "notfound@example.com")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_Update_Fields(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	testUser := createTestUser(t, ctx, uniqueEmail("update"))

	userRepo := postgresql.NewUserRepository(testDB)
	err := userRepo.Update(ctx, testUser.ID, user.UpdateUserRequest{
		FirstName:     strPtr("Chidi"),
		MiddleName:    strPtr("Okafor"),
		ApprovalLevel: strPtr(string(user.LevelSupervisor)),
	})
	require.NoError(t, err)

	updated, err := userRepo.GetByID(ctx, testUser.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chidi", updated.FirstName)
	assert.Equal(t, "User", updated.LastName) // untouched
	require.NotNil(t, updated.MiddleName)
	assert.Equal(t, "Okafor", *updated.MiddleName)
	assert.Equal(t, user.LevelSupervisor, updated.ApprovalLevel)
}

func TestUserRepository_Update_ClearNullable(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	dept := createTestDepartment(t, ctx, "Engineering")
	testUser := createTestUser(t, ctx, uniqueEmail("clear"))

	userRepo := postgresql.NewUserRepository(testDB)

	err := userRepo.Update(ctx, testUser.ID, user.UpdateUserRequest{
		MiddleName:   strPtr("Temp"),
		DepartmentID: strPtr(dept.ID),
	})
	require.NoError(t, err)

	// An empty string clears the stored value
	err = userRepo.Update(ctx, testUser.ID, user.UpdateUserRequest{
		MiddleName:   strPtr(""),
		DepartmentID: strPtr(""),
	})
	require.NoError(t, err)

	updated, err := userRepo.GetByID(ctx, testUser.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.MiddleName)
	assert.Nil(t, updated.DepartmentID)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	err := userRepo.Update(ctx, uuid.Must(uuid.NewV7()).String(), user.UpdateUserRequest{
		FirstName: strPtr("Nobody"),
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_List_Filters(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	deptA := createTestDepartment(t, ctx, "Engineering")
	deptB := createTestDepartment(t, ctx, "Operations")

	userRepo := postgresql.NewUserRepository(testDB)

	inA1 := createTestUser(t, ctx, uniqueEmail("list-a1"))
	inA2 := createTestUser(t, ctx, uniqueEmail("list-a2"))
	inB := createTestUser(t, ctx, uniqueEmail("list-b"))

	require.NoError(t, userRepo.Update(ctx, inA1.ID, user.UpdateUserRequest{DepartmentID: strPtr(deptA.ID)}))
	require.NoError(t, userRepo.Update(ctx, inA2.ID, user.UpdateUserRequest{DepartmentID: strPtr(deptA.ID)}))
	require.NoError(t, userRepo.Update(ctx, inB.ID, user.UpdateUserRequest{DepartmentID: strPtr(deptB.ID)}))

	byDept, err := userRepo.List(ctx, user.ListUsersFilter{DepartmentID: strPtr(deptA.ID)})
	require.NoError(t, err)
	assert.Len(t, byDept, 2)

	// Deactivated users drop out of an active-only listing
	require.NoError(t, userRepo.SetActive(ctx, inA1.ID, false))
	active, err := userRepo.List(ctx, user.ListUsersFilter{DepartmentID: strPtr(deptA.ID), IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, inA2.ID, active[0].ID)

	// Search matches the email
	byEmail, err := userRepo.List(ctx, user.ListUsersFilter{Search: "list-b"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, inB.ID, byEmail[0].ID)
}

func TestUserRepository_ListByReportsTo(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	manager := createTestUser(t, ctx, uniqueEmail("manager"))
	reportA := createTestUser(t, ctx, uniqueEmail("report-a"))
	reportB := createTestUser(t, ctx, uniqueEmail("report-b"))
	createTestUser(t, ctx, uniqueEmail("unrelated"))

	require.NoError(t, userRepo.Update(ctx, reportA.ID, user.UpdateUserRequest{ReportsToID: strPtr(manager.ID)}))
	require.NoError(t, userRepo.Update(ctx, reportB.ID, user.UpdateUserRequest{ReportsToID: strPtr(manager.ID)}))

	reports, err := userRepo.ListByReportsTo(ctx, manager.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	none, err := userRepo.ListByReportsTo(ctx, reportA.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepository_SetActive_KeepsRow(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	testUser := createTestUser(t, ctx, uniqueEmail("deactivate"))

	userRepo := postgresql.NewUserRepository(testDB)
	require.NoError(t, userRepo.SetActive(ctx, testUser.ID, false))

	// Deactivation is a flag flip, the row stays readable
	retrieved, err := userRepo.GetByID(ctx, testUser.ID)
	require.NoError(t, err)
	assert.False(t, retrieved.IsActive)

	require.NoError(t, userRepo.SetActive(ctx, testUser.ID, true))
	retrieved, err = userRepo.GetByID(ctx, testUser.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.IsActive)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	testUser := createTestUser(t, ctx, uniqueEmail("lastlogin"))
	assert.Nil(t, testUser.LastLogin)

	userRepo := postgresql.NewUserRepository(testDB)
	at := time.Now()
	require.NoError(t, userRepo.UpdateLastLogin(ctx, testUser.ID, at))

	retrieved, err := userRepo.GetByID(ctx, testUser.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastLogin)
	assert.WithinDuration(t, at, *retrieved.LastLogin, time.Second)
}
