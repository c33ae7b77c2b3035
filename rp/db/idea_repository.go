package db

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . IdeaRepository

// IdeaRepository reads the idea versions runs are launched from. Ideas are
// produced upstream; the control plane only consumes them.
type IdeaRepository interface {
	GetIdeaVersion(ideaVersionID string) (IdeaVersion, bool, error)
}

type IdeaVersion struct {
	ID             string
	IdeaID         string
	ConversationID string
	UserID         string
	Title          string
	Content        json.RawMessage
}

type ideaRepository struct {
	conn DbConn
}

func NewIdeaRepository(conn DbConn) IdeaRepository {
	return &ideaRepository{conn: conn}
}

func (repo *ideaRepository) GetIdeaVersion(ideaVersionID string) (IdeaVersion, bool, error) {
	var (
		iv      IdeaVersion
		title   sql.NullString
		content []byte
	)

	err := psql.Select("id", "idea_id", "conversation_id", "user_id", "title", "content").
		From("idea_versions").
		Where(sq.Eq{"id": ideaVersionID}).
		RunWith(repo.conn).
		QueryRow().
		Scan(&iv.ID, &iv.IdeaID, &iv.ConversationID, &iv.UserID, &title, &content)
	if err != nil {
		if err == sql.ErrNoRows {
			return IdeaVersion{}, false, nil
		}
		return IdeaVersion{}, false, err
	}

	iv.Title = title.String
	iv.Content = json.RawMessage(content)
	return iv, true, nil
}
