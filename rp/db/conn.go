package db

import (
	"database/sql"
	"io"
	"time"

	"code.cloudfoundry.org/lager/v3"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type scannable interface {
	Scan(dest ...any) error
}

//counterfeiter:generate . DbConn

// DbConn is the database handle the repositories run against. It is
// satisfied by the wrapper around *sql.DB and, transitively, by Tx for
// query building inside transactions.
type DbConn interface {
	Begin() (Tx, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	Close() error
}

// Tx is an in-flight transaction.
type Tx interface {
	Commit() error
	Rollback() error
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

type dbConn struct {
	logger lager.Logger
	db     *sql.DB
}

// Open connects to Postgres via the pgx stdlib driver.
func Open(logger lager.Logger, dataSource string, maxOpenConns int) (DbConn, error) {
	sqlDB, err := sql.Open("pgx", dataSource)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &dbConn{logger: logger, db: sqlDB}, nil
}

func (c *dbConn) Begin() (Tx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}
	return &dbTx{tx}, nil
}

func (c *dbConn) Query(query string, args ...any) (*sql.Rows, error) {
	return c.db.Query(query, args...)
}

func (c *dbConn) QueryRow(query string, args ...any) *sql.Row {
	return c.db.QueryRow(query, args...)
}

func (c *dbConn) Exec(query string, args ...any) (sql.Result, error) {
	return c.db.Exec(query, args...)
}

func (c *dbConn) Close() error {
	return c.db.Close()
}

type dbTx struct {
	tx *sql.Tx
}

func (t *dbTx) Commit() error   { return t.tx.Commit() }
func (t *dbTx) Rollback() error { return t.tx.Rollback() }

func (t *dbTx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.tx.Query(query, args...)
}

func (t *dbTx) QueryRow(query string, args ...any) *sql.Row {
	return t.tx.QueryRow(query, args...)
}

func (t *dbTx) Exec(query string, args ...any) (sql.Result, error) {
	return t.tx.Exec(query, args...)
}

// Rollback is a deferred-rollback helper; a rollback after commit is a
// no-op error and is ignored.
func Rollback(tx Tx) {
	_ = tx.Rollback()
}

// Close swallows row-close errors in deferred positions.
func Close(c io.Closer) {
	_ = c.Close()
}
