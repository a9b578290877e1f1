package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"inka-simulator/domain"
)

// PostgresStore persiste el historial de simulaciones en el backend SQL
// alojado de la cooperativa. Se usa en despliegues compartidos; en local
// basta con SQLiteStore.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("[INFO] postgres store conectado")
	return s, nil
}

func (s *PostgresStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS credit_simulations (
			id                UUID PRIMARY KEY,
			created_at        TIMESTAMPTZ NOT NULL,
			principal         NUMERIC NOT NULL,
			monthly_rate      NUMERIC NOT NULL,
			term_months       INTEGER NOT NULL,
			disbursement_date DATE NOT NULL,
			payment_day       INTEGER NOT NULL,
			total_fee         NUMERIC,
			total_interest    NUMERIC,
			total_savings     NUMERIC,
			base_installment  NUMERIC,
			maturity_date     DATE,
			schedule_json     JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS investment_simulations (
			id             UUID PRIMARY KEY,
			created_at     TIMESTAMPTZ NOT NULL,
			principal      NUMERIC NOT NULL,
			annual_rate    NUMERIC NOT NULL,
			term_months    INTEGER NOT NULL,
			start_date     DATE NOT NULL,
			total_interest NUMERIC,
			maturity_value NUMERIC,
			maturity_date  DATE,
			entries_json   JSONB
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *PostgresStore) SaveCredit(input domain.LoanSimulationInput, result *domain.LoanSimulationResult) error {
	schedule, err := json.Marshal(result.Installments)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO credit_simulations
		(id, created_at, principal, monthly_rate, term_months, disbursement_date, payment_day,
		 total_fee, total_interest, total_savings, base_installment, maturity_date, schedule_json)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		uuid.NewString(), time.Now().UTC(),
		input.Principal.String(), input.MonthlyRate.String(), input.TermMonths,
		input.DisbursementDate, input.PaymentDay,
		result.TotalAdministrativeFee.String(), result.TotalInterest.String(),
		result.TotalSavings.String(), result.BaseInstallmentAmount.String(),
		result.MaturityDate, string(schedule),
	)
	return err
}

func (s *PostgresStore) SaveInvestment(input domain.InvestmentSimulationInput, result *domain.InvestmentProjectionResult) error {
	entries, err := json.Marshal(result.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO investment_simulations
		(id, created_at, principal, annual_rate, term_months, start_date,
		 total_interest, maturity_value, maturity_date, entries_json)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		uuid.NewString(), time.Now().UTC(),
		input.Principal.String(), input.AnnualRate.String(), input.TermMonths,
		input.StartDate,
		result.TotalInterest.String(), result.MaturityValue.String(),
		result.MaturityDate, string(entries),
	)
	return err
}

func (s *PostgresStore) Close() error {
	log.Println("[INFO] cerrando postgres store")
	return s.db.Close()
}
