package db

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . TokenUsageRepository

// TokenUsageRepository records aggregated LLM token consumption. Rows are
// append-only; billing derives debits from them at ingest time.
type TokenUsageRepository interface {
	Insert(usage TokenUsage) error
	TotalsForConversation(conversationID string) (input, cachedInput, output int64, err error)
}

// TokenUsage is one aggregated usage record attributed to a conversation
// and, when emitted by a pipeline pod, to a run.
type TokenUsage struct {
	ConversationID    string
	RunID             string
	Provider          string
	Model             string
	InputTokens       int64
	CachedInputTokens int64
	OutputTokens      int64
	OccurredAt        time.Time
}

type tokenUsageRepository struct {
	conn DbConn
}

func NewTokenUsageRepository(conn DbConn) TokenUsageRepository {
	return &tokenUsageRepository{conn: conn}
}

func (repo *tokenUsageRepository) Insert(usage TokenUsage) error {
	_, err := psql.Insert("token_usage").
		SetMap(map[string]any{
			"conversation_id":     usage.ConversationID,
			"run_id":              nullStr(usage.RunID),
			"provider":            usage.Provider,
			"model":               usage.Model,
			"input_tokens":        usage.InputTokens,
			"cached_input_tokens": usage.CachedInputTokens,
			"output_tokens":       usage.OutputTokens,
			"created_at":          usage.OccurredAt,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *tokenUsageRepository) TotalsForConversation(conversationID string) (int64, int64, int64, error) {
	var input, cachedInput, output int64
	err := psql.Select(
		"COALESCE(SUM(input_tokens), 0)",
		"COALESCE(SUM(cached_input_tokens), 0)",
		"COALESCE(SUM(output_tokens), 0)",
	).
		From("token_usage").
		Where(sq.Eq{"conversation_id": conversationID}).
		RunWith(repo.conn).
		QueryRow().
		Scan(&input, &cachedInput, &output)
	if err != nil {
		return 0, 0, 0, err
	}
	return input, cachedInput, output, nil
}
