package db

// Process-wide advisory lock ids. Stable across replicas; only the holder
// performs the guarded work.
const (
	LockIDRecovery int64 = 0x72_70_72_63 // "rprc"
)

// AcquireLock takes a transaction-scoped advisory lock without blocking.
// The caller holds the returned transaction open for the duration of the
// guarded work and commits it to release the lock. This pins the lock to a
// single connection, which a session-level lock on a pooled DB would not.
func AcquireLock(conn DbConn, lockID int64) (Tx, bool, error) {
	tx, err := conn.Begin()
	if err != nil {
		return nil, false, err
	}

	var acquired bool
	err = tx.QueryRow("SELECT pg_try_advisory_xact_lock($1)", lockID).Scan(&acquired)
	if err != nil {
		Rollback(tx)
		return nil, false, err
	}

	if !acquired {
		Rollback(tx)
		return nil, false, nil
	}

	return tx, true, nil
}
