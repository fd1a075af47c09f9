package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sqlgen/models"
	"sqlgen/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// PostgresChecker asks a PostgreSQL server to plan generated SQL without
// running it. Every EXPLAIN happens in a read-only transaction that is
// rolled back.
type PostgresChecker struct {
	db     *sql.DB
	logger *zap.Logger
}

func OpenPostgresChecker(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresChecker, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	checker := NewPostgresChecker(db, logger)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		// Start anyway; the server may come up later.
		checker.logger.Warn("failed to ping postgres during initialization", zap.Error(err))
	}

	return checker, nil
}

func NewPostgresChecker(db *sql.DB, logger *zap.Logger) *PostgresChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresChecker{db: db, logger: logger}
}

func (c *PostgresChecker) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *PostgresChecker) IsConnected(ctx context.Context) bool {
	if c.db == nil {
		return false
	}
	return c.db.PingContext(ctx) == nil
}

// Explain returns the query plan lines for statement.
func (c *PostgresChecker) Explain(ctx context.Context, statement string) ([]string, error) {
	statement = NormalizeStatement(statement)
	if statement == "" {
		return nil, fmt.Errorf("statement is empty")
	}

	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "EXPLAIN "+statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plan []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		plan = append(plan, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Check decodes an uploaded file and explains its content.
func (c *PostgresChecker) Check(ctx context.Context, file models.UploadedFile) models.CheckResult {
	result := models.CheckResult{File: file.Name}

	content, err := validation.DecodeText(file.Name, file.Content)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	plan, err := c.Explain(ctx, content)
	if err != nil {
		c.logger.Info("explain rejected statement", zap.String("file", file.Name), zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	result.Plan = plan
	return result
}

// NormalizeStatement strips markdown fences, surrounding whitespace and
// trailing semicolons so the text can follow an EXPLAIN keyword.
func NormalizeStatement(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```sql")
		trimmed = strings.TrimPrefix(trimmed, "```SQL")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	trimmed = strings.TrimSpace(trimmed)
	for strings.HasSuffix(trimmed, ";") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, ";"))
	}
	return trimmed
}
