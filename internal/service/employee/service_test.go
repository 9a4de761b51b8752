package employee

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

func testCtx(t *testing.T, employeeID int64, isAdmin bool) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": strconv.FormatInt(employeeID, 10),
		"email":       "test@example.com",
		"is_admin":    isAdmin,
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type stubEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[int64]employee.Employee), nextID: 1}
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range s.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	emp.ID = s.nextID
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	s.nextID++
	s.employees[emp.ID] = emp
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, ok := s.employees[req.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	s.employees[req.ID] = emp
	return emp, nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateEmployeeGeneratesCode(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(nil, repo, nil)

	resp, err := svc.CreateEmployee(testCtx(t, 1, true), employee.CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Wong",
		Email:     "ada@example.com",
		Password:  "password123",
	})

	require.NoError(t, err)
	assert.True(t, validator.IsValidEmployeeCode(resp.EmployeeCode),
		"generated code %q does not match the expected shape", resp.EmployeeCode)
	assert.Equal(t, string(employee.RoleEmployee), resp.Role)
	assert.Equal(t, string(employee.StatusActive), resp.Status)

	// The stored password is a bcrypt hash, never the plaintext.
	stored := repo.employees[resp.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("password123")))
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(nil, newStubEmployeeRepo(), nil)

	_, err := svc.CreateEmployee(testCtx(t, 1, true), employee.CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Wong",
		Email:     "not-an-email",
		Password:  "short",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestGetEmployeeForbiddenForOtherRecord(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(nil, repo, nil)

	created, err := repo.Create(context.Background(), employee.Employee{
		EmployeeCode: "EMP-AAAA1111",
		FirstName:    "Ada",
		LastName:     "Wong",
		Email:        "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.GetEmployee(testCtx(t, created.ID+1, false), created.ID)
	assert.ErrorIs(t, err, employee.ErrForbidden)

	// The employee can read their own record, admins can read anyone's.
	_, err = svc.GetEmployee(testCtx(t, created.ID, false), created.ID)
	assert.NoError(t, err)
	_, err = svc.GetEmployee(testCtx(t, 99, true), created.ID)
	assert.NoError(t, err)
}

func TestListEmployeesScopesNonAdminToSelf(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(nil, repo, nil)

	var ids []int64
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		created, err := repo.Create(context.Background(), employee.Employee{Email: email})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	out, err := svc.ListEmployees(testCtx(t, ids[1], false))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ids[1], out[0].ID)

	out, err = svc.ListEmployees(testCtx(t, ids[0], true))
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestUpdateEmployeeSelfServiceSubset(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(nil, repo, nil)

	created, err := repo.Create(context.Background(), employee.Employee{
		FirstName: "Ada",
		LastName:  "Wong",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	// Phone and name are fair game for the employee themselves.
	resp, err := svc.UpdateEmployee(testCtx(t, created.ID, false), employee.UpdateEmployeeRequest{
		ID:    created.ID,
		Phone: strPtr("+6281234567890"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+6281234567890", *resp.Phone)

	// Salary is not.
	salary := decimal.RequireFromString("9999")
	_, err = svc.UpdateEmployee(testCtx(t, created.ID, false), employee.UpdateEmployeeRequest{
		ID:     created.ID,
		Salary: &salary,
	})
	assert.ErrorIs(t, err, employee.ErrSelfServiceFieldReadOnly)

	// Another employee's record is off limits entirely.
	_, err = svc.UpdateEmployee(testCtx(t, created.ID+1, false), employee.UpdateEmployeeRequest{
		ID:    created.ID,
		Phone: strPtr("+620000000000"),
	})
	assert.ErrorIs(t, err, employee.ErrForbidden)

	// Admins may set anything.
	_, err = svc.UpdateEmployee(testCtx(t, 99, true), employee.UpdateEmployeeRequest{
		ID:     created.ID,
		Salary: &salary,
	})
	assert.NoError(t, err)
}

func TestSalaryHiddenFromOtherEmployees(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(nil, repo, nil)

	created, err := repo.Create(context.Background(), employee.Employee{
		Email:  "ada@example.com",
		Salary: decimal.RequireFromString("5000"),
	})
	require.NoError(t, err)

	// Admin listing shows the salary.
	out, err := svc.ListEmployees(testCtx(t, 99, true))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Salary)

	// The employee sees their own salary too.
	own, err := svc.GetEmployee(testCtx(t, created.ID, false), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, own.Salary)
}
