package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"inka-simulator/domain"
)

const dateLayout = "2006-01-02"

// SQLiteStore persiste el historial de simulaciones y los recordatorios
// en una base SQLite local.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore abre (o crea) la base y ejecuta las migraciones.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL para que las lecturas de reportes no bloqueen las escrituras.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store abierto: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS credit_simulations (
			id                TEXT PRIMARY KEY,
			created_at        INTEGER NOT NULL,
			principal         TEXT NOT NULL,
			monthly_rate      TEXT NOT NULL,
			term_months       INTEGER NOT NULL,
			disbursement_date TEXT NOT NULL,
			payment_day       INTEGER NOT NULL,
			total_fee         TEXT,
			total_interest    TEXT,
			total_savings     TEXT,
			base_installment  TEXT,
			maturity_date     TEXT,
			schedule_json     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_credit_created ON credit_simulations(created_at)`,

		`CREATE TABLE IF NOT EXISTS investment_simulations (
			id             TEXT PRIMARY KEY,
			created_at     INTEGER NOT NULL,
			principal      TEXT NOT NULL,
			annual_rate    TEXT NOT NULL,
			term_months    INTEGER NOT NULL,
			start_date     TEXT NOT NULL,
			total_interest TEXT,
			maturity_value TEXT,
			maturity_date  TEXT,
			entries_json   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_investment_created ON investment_simulations(created_at)`,

		`CREATE TABLE IF NOT EXISTS reminders (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			notes      TEXT,
			due_date   TEXT NOT NULL,
			recurrence TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveCredit(input domain.LoanSimulationInput, result *domain.LoanSimulationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule, err := json.Marshal(result.Installments)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO credit_simulations
		(id, created_at, principal, monthly_rate, term_months, disbursement_date, payment_day,
		 total_fee, total_interest, total_savings, base_installment, maturity_date, schedule_json)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), time.Now().Unix(),
		input.Principal.String(), input.MonthlyRate.String(), input.TermMonths,
		input.DisbursementDate.Format(dateLayout), input.PaymentDay,
		result.TotalAdministrativeFee.String(), result.TotalInterest.String(),
		result.TotalSavings.String(), result.BaseInstallmentAmount.String(),
		result.MaturityDate.Format(dateLayout), string(schedule),
	)
	return err
}

func (s *SQLiteStore) SaveInvestment(input domain.InvestmentSimulationInput, result *domain.InvestmentProjectionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := json.Marshal(result.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO investment_simulations
		(id, created_at, principal, annual_rate, term_months, start_date,
		 total_interest, maturity_value, maturity_date, entries_json)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), time.Now().Unix(),
		input.Principal.String(), input.AnnualRate.String(), input.TermMonths,
		input.StartDate.Format(dateLayout),
		result.TotalInterest.String(), result.MaturityValue.String(),
		result.MaturityDate.Format(dateLayout), string(entries),
	)
	return err
}

func (s *SQLiteStore) Add(r domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO reminders (id, title, notes, due_date, recurrence)
		VALUES (?,?,?,?,?)`,
		r.ID, r.Title, r.Notes, r.DueDate.Format(dateLayout), string(r.Recurrence),
	)
	return err
}

func (s *SQLiteStore) List() ([]domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, title, notes, due_date, recurrence FROM reminders ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		var r domain.Reminder
		var due, recurrence string
		if err := rows.Scan(&r.ID, &r.Title, &r.Notes, &due, &recurrence); err != nil {
			return nil, err
		}
		r.DueDate, err = time.Parse(dateLayout, due)
		if err != nil {
			return nil, fmt.Errorf("parse due_date %q: %w", due, err)
		}
		r.Recurrence = domain.Recurrence(recurrence)
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] cerrando sqlite store")
	return s.db.Close()
}
