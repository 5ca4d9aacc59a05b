package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"goroster/roster"
)

const dateLayout = "2006-01-02"

type SQLiteStore struct {
	db *sql.DB
}

var ErrEmployeeNotFound = errors.New("employee not found")

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	emp_id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	nsbt_batch_no TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	grade TEXT NOT NULL DEFAULT '',
	ranking TEXT NOT NULL DEFAULT '',
	bu TEXT NOT NULL DEFAULT '',
	mpr_no TEXT NOT NULL DEFAULT '',
	io_name TEXT NOT NULL DEFAULT '',
	doj TEXT NOT NULL,
	resignation_date TEXT,
	released_date TEXT,
	source_file TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := s.ensureSourceFileColumn(); err != nil {
		return err
	}

	return nil
}

// ensureSourceFileColumn migrates databases created before upload
// provenance was recorded.
func (s *SQLiteStore) ensureSourceFileColumn() error {
	rows, err := s.db.Query(`PRAGMA table_info(employees);`)
	if err != nil {
		return fmt.Errorf("query table info: %w", err)
	}
	defer rows.Close()

	hasSourceFile := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scan table info: %w", err)
		}
		if strings.EqualFold(name, "source_file") {
			hasSourceFile = true
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate table info: %w", err)
	}

	if hasSourceFile {
		return nil
	}

	if _, err := s.db.Exec(`ALTER TABLE employees ADD COLUMN source_file TEXT NOT NULL DEFAULT '';`); err != nil {
		return fmt.Errorf("add source_file column: %w", err)
	}

	return nil
}

// UpsertEmployees writes a parsed batch, keyed by emp_id: new IDs are
// inserted, existing IDs overwritten with the fresh roster data. Returns
// how many rows fell on each side.
func (s *SQLiteStore) UpsertEmployees(employees []roster.Employee) (inserted, updated int, err error) {
	if len(employees) == 0 {
		return 0, 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR IGNORE INTO employees (
	emp_id,
	name,
	gender,
	nsbt_batch_no,
	status,
	grade,
	ranking,
	bu,
	mpr_no,
	io_name,
	doj,
	resignation_date,
	released_date,
	source_file
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	const updateStmt = `
UPDATE employees
SET name = ?,
	gender = ?,
	nsbt_batch_no = ?,
	status = ?,
	grade = ?,
	ranking = ?,
	bu = ?,
	mpr_no = ?,
	io_name = ?,
	doj = ?,
	resignation_date = ?,
	released_date = ?,
	source_file = ?,
	updated_at = CURRENT_TIMESTAMP
WHERE emp_id = ?;`

	insert, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer insert.Close()

	update, err := tx.Prepare(updateStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, 0, fmt.Errorf("prepare update statement: %w", err)
	}
	defer update.Close()

	for _, employee := range employees {
		res, execErr := insert.Exec(
			employee.EmpID,
			employee.Name,
			employee.Gender,
			employee.NSBTBatchNo,
			employee.Status,
			employee.Grade,
			employee.Ranking,
			employee.BU,
			employee.MPRNo,
			employee.IOName,
			employee.DOJ.Format(dateLayout),
			nullableDate(employee.ResignationDate),
			nullableDate(employee.ReleasedDate),
			employee.SourceFile,
		)
		if execErr != nil {
			_ = tx.Rollback()
			return inserted, updated, fmt.Errorf("insert employee %s: %w", employee.EmpID, execErr)
		}

		rows, raErr := res.RowsAffected()
		if raErr == nil && rows > 0 {
			inserted++
			continue
		}

		res, execErr = update.Exec(
			employee.Name,
			employee.Gender,
			employee.NSBTBatchNo,
			employee.Status,
			employee.Grade,
			employee.Ranking,
			employee.BU,
			employee.MPRNo,
			employee.IOName,
			employee.DOJ.Format(dateLayout),
			nullableDate(employee.ResignationDate),
			nullableDate(employee.ReleasedDate),
			employee.SourceFile,
			employee.EmpID,
		)
		if execErr != nil {
			_ = tx.Rollback()
			return inserted, updated, fmt.Errorf("update employee %s: %w", employee.EmpID, execErr)
		}
		rows, raErr = res.RowsAffected()
		if raErr == nil && rows > 0 {
			updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, updated, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, updated, nil
}

const employeeColumns = `
	id,
	emp_id,
	name,
	gender,
	nsbt_batch_no,
	status,
	grade,
	ranking,
	bu,
	mpr_no,
	io_name,
	doj,
	resignation_date,
	released_date,
	source_file`

func (s *SQLiteStore) ListEmployees() ([]roster.Employee, error) {
	query := `SELECT` + employeeColumns + `
FROM employees
ORDER BY emp_id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]roster.Employee, 0, 256)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// GetEmployee returns one employee by roster ID. ErrEmployeeNotFound when
// no row matches.
func (s *SQLiteStore) GetEmployee(empID string) (roster.Employee, error) {
	if strings.TrimSpace(empID) == "" {
		return roster.Employee{}, fmt.Errorf("emp_id must not be empty")
	}

	query := `SELECT` + employeeColumns + `
FROM employees
WHERE emp_id = ?;
`

	row := s.db.QueryRow(query, empID)
	employee, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Employee{}, ErrEmployeeNotFound
		}
		return roster.Employee{}, err
	}
	return employee, nil
}

// DeleteEmployee removes one employee by roster ID.
func (s *SQLiteStore) DeleteEmployee(empID string) (bool, error) {
	if strings.TrimSpace(empID) == "" {
		return false, fmt.Errorf("emp_id must not be empty")
	}

	res, err := s.db.Exec(`DELETE FROM employees WHERE emp_id = ?;`, empID)
	if err != nil {
		return false, fmt.Errorf("delete employee %s: %w", empID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rowsAffected > 0, nil
}

// CountByStatus returns how many stored employees hold each status.
func (s *SQLiteStore) CountByStatus() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM employees GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("count employees by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}
	return counts, nil
}

func scanEmployee(scan func(dest ...any) error) (roster.Employee, error) {
	var (
		employee       roster.Employee
		dojRaw         string
		resignationRaw sql.NullString
		releasedRaw    sql.NullString
	)

	if err := scan(
		&employee.ID,
		&employee.EmpID,
		&employee.Name,
		&employee.Gender,
		&employee.NSBTBatchNo,
		&employee.Status,
		&employee.Grade,
		&employee.Ranking,
		&employee.BU,
		&employee.MPRNo,
		&employee.IOName,
		&dojRaw,
		&resignationRaw,
		&releasedRaw,
		&employee.SourceFile,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Employee{}, err
		}
		return roster.Employee{}, fmt.Errorf("scan employee: %w", err)
	}

	doj, err := time.ParseInLocation(dateLayout, dojRaw, time.Local)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("parse doj %q: %w", dojRaw, err)
	}
	employee.DOJ = doj

	employee.ResignationDate, err = parseNullableDate(resignationRaw)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("parse resignation date: %w", err)
	}
	employee.ReleasedDate, err = parseNullableDate(releasedRaw)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("parse released date: %w", err)
	}

	return employee, nil
}

func nullableDate(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value.Format(dateLayout)
}

func parseNullableDate(raw sql.NullString) (time.Time, error) {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, raw.String, time.Local)
}
