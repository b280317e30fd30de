package postgresql_test

import (
	"context"
	"testing"

	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/officelocation"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/unit"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== DEPARTMENT REPOSITORY TESTS =====

func TestDepartmentRepository_Create_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)

	created, err := repo.Create(ctx, department.Department{
		Name:        "Engineering",
		Description: "Builds and runs the product",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Engineering", created.Name)
	assert.Nil(t, created.HeadID)
	assert.True(t, created.IsActive)
}

func TestDepartmentRepository_Create_DuplicateName(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)
	createTestDepartment(t, ctx, "Engineering")

	_, err := repo.Create(ctx, department.Department{Name: "Engineering"})

	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "departments_name_key", pgErr.ConstraintName)
}

func TestDepartmentRepository_SetHead_AndReverseLookup(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)

	dept := createTestDepartment(t, ctx, "Engineering")
	head := createTestUser(t, ctx, uniqueEmail("head"))

	// No head assigned yet
	_, err := repo.GetByHeadID(ctx, head.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	require.NoError(t, repo.SetHead(ctx, dept.ID, strPtr(head.ID)))

	found, err := repo.GetByHeadID(ctx, head.ID)
	require.NoError(t, err)
	assert.Equal(t, dept.ID, found.ID)

	// Clearing the head works with nil
	require.NoError(t, repo.SetHead(ctx, dept.ID, nil))
	_, err = repo.GetByHeadID(ctx, head.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentRepository_SetHead_OnePerUser(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)

	deptA := createTestDepartment(t, ctx, "Engineering")
	deptB := createTestDepartment(t, ctx, "Operations")
	head := createTestUser(t, ctx, uniqueEmail("twohats"))

	require.NoError(t, repo.SetHead(ctx, deptA.ID, strPtr(head.ID)))

	err := repo.SetHead(ctx, deptB.ID, strPtr(head.ID))
	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "departments_head_id_key", pgErr.ConstraintName)
}

func TestDepartmentRepository_Delete_CascadesAndDetaches(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	deptRepo := postgresql.NewDepartmentRepository(testDB)
	unitRepo := postgresql.NewUnitRepository(testDB)
	userRepo := postgresql.NewUserRepository(testDB)

	dept := createTestDepartment(t, ctx, "Engineering")
	backend := createTestUnit(t, ctx, dept.ID, "Backend")

	member := createTestUser(t, ctx, uniqueEmail("member"))
	require.NoError(t, userRepo.Update(ctx, member.ID, user.UpdateUserRequest{
		DepartmentID: strPtr(dept.ID),
		UnitID:       strPtr(backend.ID),
	}))

	require.NoError(t, deptRepo.Delete(ctx, dept.ID))

	// Units go with their department
	_, err := unitRepo.GetByID(ctx, backend.ID)
	assert.ErrorIs(t, err, unit.ErrUnitNotFound)

	// Member rows survive with the references cleared
	detached, err := userRepo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.DepartmentID)
	assert.Nil(t, detached.UnitID)
}

// ===== UNIT REPOSITORY TESTS =====

func TestUnitRepository_NameUniquePerDepartment(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewUnitRepository(testDB)

	deptA := createTestDepartment(t, ctx, "Engineering")
	deptB := createTestDepartment(t, ctx, "Operations")

	createTestUnit(t, ctx, deptA.ID, "Backend")

	// The same name under another department is fine
	_, err := repo.Create(ctx, unit.Unit{Name: "Backend", DepartmentID: deptB.ID})
	assert.NoError(t, err)

	// Under the same department it is not
	_, err = repo.Create(ctx, unit.Unit{Name: "Backend", DepartmentID: deptA.ID})
	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "units_department_id_name_key", pgErr.ConstraintName)
}

func TestUnitRepository_SetSupervisor_AndReverseLookup(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewUnitRepository(testDB)

	dept := createTestDepartment(t, ctx, "Engineering")
	backend := createTestUnit(t, ctx, dept.ID, "Backend")
	supervisor := createTestUser(t, ctx, uniqueEmail("supervisor"))

	_, err := repo.GetBySupervisorID(ctx, supervisor.ID)
	assert.ErrorIs(t, err, unit.ErrUnitNotFound)

	require.NoError(t, repo.SetSupervisor(ctx, backend.ID, strPtr(supervisor.ID)))

	found, err := repo.GetBySupervisorID(ctx, supervisor.ID)
	require.NoError(t, err)
	assert.Equal(t, backend.ID, found.ID)
}

func TestUnitRepository_SetSupervisor_OnePerUser(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewUnitRepository(testDB)

	dept := createTestDepartment(t, ctx, "Engineering")
	backend := createTestUnit(t, ctx, dept.ID, "Backend")
	frontend := createTestUnit(t, ctx, dept.ID, "Frontend")
	supervisor := createTestUser(t, ctx, uniqueEmail("busy"))

	require.NoError(t, repo.SetSupervisor(ctx, backend.ID, strPtr(supervisor.ID)))

	err := repo.SetSupervisor(ctx, frontend.ID, strPtr(supervisor.ID))
	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "units_supervisor_id_key", pgErr.ConstraintName)
}

func TestUnitRepository_List_ByDepartment(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewUnitRepository(testDB)

	deptA := createTestDepartment(t, ctx, "Engineering")
	deptB := createTestDepartment(t, ctx, "Operations")
	createTestUnit(t, ctx, deptA.ID, "Backend")
	createTestUnit(t, ctx, deptA.ID, "Frontend")
	createTestUnit(t, ctx, deptB.ID, "Logistics")

	units, err := repo.List(ctx, unit.ListUnitsFilter{DepartmentID: strPtr(deptA.ID)})
	require.NoError(t, err)
	assert.Len(t, units, 2)
}

// ===== OFFICE LOCATION REPOSITORY TESTS =====

func TestOfficeLocationRepository_CreateAndGet(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewOfficeLocationRepository(testDB)

	created, err := repo.Create(ctx, officelocation.OfficeLocation{
		Name:    "Head Office",
		Address: "Plot 28 Port Harcourt Crescent, Abuja",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byName, err := repo.GetByName(ctx, "Head Office")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByName(ctx, "Nowhere")
	assert.ErrorIs(t, err, officelocation.ErrOfficeLocationNotFound)
}

func TestOfficeLocationRepository_DuplicateName(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewOfficeLocationRepository(testDB)

	_, err := repo.Create(ctx, officelocation.OfficeLocation{Name: "Head Office"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, officelocation.OfficeLocation{Name: "Head Office"})
	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Equal(t, "office_locations_name_key", pgErr.ConstraintName)
}
