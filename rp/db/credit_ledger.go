package db

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . CreditLedger

// CreditLedger exposes the user credit balance and audited debits. Debits
// never fail on balance: negative balances are permitted, and admission is
// enforced only at defined entry points.
type CreditLedger interface {
	Balance(userID string) (float64, error)
	Debit(userID string, amount float64, action, description string, metadata map[string]any) error
}

type creditLedger struct {
	conn DbConn
}

func NewCreditLedger(conn DbConn) CreditLedger {
	return &creditLedger{conn: conn}
}

func (l *creditLedger) Balance(userID string) (float64, error) {
	var balance float64
	err := psql.Select("credits").
		From("user_credits").
		Where(sq.Eq{"user_id": userID}).
		RunWith(l.conn).
		QueryRow().
		Scan(&balance)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (l *creditLedger) Debit(userID string, amount float64, action, description string, metadata map[string]any) error {
	meta, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	tx, err := l.conn.Begin()
	if err != nil {
		return err
	}
	defer Rollback(tx)

	_, err = psql.Update("user_credits").
		Set("credits", sq.Expr("credits - ?", amount)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		RunWith(tx).
		Exec()
	if err != nil {
		return err
	}

	_, err = psql.Insert("credit_transactions").
		SetMap(map[string]any{
			"user_id":     userID,
			"amount":      -amount,
			"action":      action,
			"description": description,
			"metadata":    meta,
			"created_at":  sq.Expr("NOW()"),
		}).
		RunWith(tx).
		Exec()
	if err != nil {
		return err
	}

	return tx.Commit()
}
