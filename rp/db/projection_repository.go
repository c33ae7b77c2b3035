package db

import (
	"database/sql"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ae-scientist/tower/rp"
)

//counterfeiter:generate . ProjectionRepository

// ProjectionRepository persists the append-only (or upsert-by-natural-key)
// projections of webhook payloads and rehydrates them for snapshots.
type ProjectionRepository interface {
	InsertStageProgress(runID string, ev rp.StageProgressEvent, at time.Time) error
	StageProgress(runID string, limit int) ([]rp.StageProgressRow, error)

	InsertSubstageCompleted(runID string, ev rp.SubstageCompletedEvent, at time.Time) error
	SubstagesCompleted(runID string) ([]rp.SubstageCompletedRow, error)

	InsertSubstageSummary(runID string, ev rp.SubstageSummaryEvent, at time.Time) error
	SubstageSummaries(runID string) ([]rp.SubstageSummaryRow, error)

	InsertPaperProgress(runID string, ev rp.PaperGenerationProgressEvent, at time.Time) error
	PaperProgress(runID string, limit int) ([]rp.PaperProgressRow, error)

	UpsertTreeViz(runID string, ev rp.TreeVizEvent, at time.Time) error
	TreeViz(runID string) ([]rp.TreeVizRow, error)

	UpsertStageSkipWindow(runID string, ev rp.StageSkipWindowEvent, at time.Time) error
	StageSkipWindows(runID string) ([]rp.StageSkipWindowRow, error)

	InsertRunLog(runID string, ev rp.RunLogEvent, at time.Time) error
	RunLogs(runID string, limit int) ([]rp.RunLogRow, error)

	InsertBestNode(runID string, ev rp.BestNodeSelectionEvent, at time.Time) error
	BestNodes(runID string) ([]rp.BestNodeRow, error)

	UpsertCodeExecutionStarted(runID string, ev rp.RunningCodeEvent) error
	UpsertCodeExecutionCompleted(runID string, ev rp.CodeRunCompletedEvent) error
	LatestCodeExecution(runID string) (*rp.CodeExecutionRow, error)

	UpsertArtifact(runID, s3Key string, ev rp.ArtifactUploadedEvent) error
	Artifacts(runID string) ([]rp.ArtifactRow, error)

	InsertLlmReview(runID string, ev rp.LlmReviewEvent, at time.Time) (int, error)
	InsertFigureReviews(runID string, reviews []rp.VlmFigureReview, at time.Time) error
	InsertCodexEvent(runID string, payload json.RawMessage, at time.Time) error
}

type projectionRepository struct {
	conn DbConn
}

func NewProjectionRepository(conn DbConn) ProjectionRepository {
	return &projectionRepository{conn: conn}
}

func (repo *projectionRepository) InsertStageProgress(runID string, ev rp.StageProgressEvent, at time.Time) error {
	_, err := psql.Insert("stage_progress").
		SetMap(map[string]any{
			"run_id":         runID,
			"stage":          ev.Stage,
			"iteration":      ev.Iteration,
			"max_iterations": ev.MaxIterations,
			"progress":       ev.Progress,
			"total_nodes":    ev.TotalNodes,
			"buggy_nodes":    ev.BuggyNodes,
			"good_nodes":     ev.GoodNodes,
			"best_metric":    ev.BestMetric,
			"is_seed_node":   ev.IsSeedNode,
			"occurred_at":    at,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) StageProgress(runID string, limit int) ([]rp.StageProgressRow, error) {
	query := psql.Select(
		"stage", "iteration", "max_iterations", "progress",
		"total_nodes", "buggy_nodes", "good_nodes", "best_metric",
		"is_seed_node", "occurred_at",
	).
		From("stage_progress").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.RunWith(repo.conn).Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.StageProgressRow{}
	for rows.Next() {
		var (
			row        rp.StageProgressRow
			bestMetric sql.NullFloat64
			occurredAt time.Time
		)
		err := rows.Scan(
			&row.Stage, &row.Iteration, &row.MaxIterations, &row.Progress,
			&row.TotalNodes, &row.BuggyNodes, &row.GoodNodes, &bestMetric,
			&row.IsSeedNode, &occurredAt,
		)
		if err != nil {
			return nil, err
		}
		if bestMetric.Valid {
			row.BestMetric = &bestMetric.Float64
		}
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertSubstageCompleted(runID string, ev rp.SubstageCompletedEvent, at time.Time) error {
	summary, err := json.Marshal(ev.Summary)
	if err != nil {
		return err
	}

	_, err = psql.Insert("substages_completed").
		SetMap(map[string]any{
			"run_id":            runID,
			"stage":             ev.Stage,
			"main_stage_number": ev.MainStageNumber,
			"reason":            ev.Reason,
			"summary":           summary,
			"occurred_at":       at,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) SubstagesCompleted(runID string) ([]rp.SubstageCompletedRow, error) {
	rows, err := psql.Select("stage", "main_stage_number", "reason", "summary", "occurred_at").
		From("substages_completed").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.SubstageCompletedRow{}
	for rows.Next() {
		var (
			row        rp.SubstageCompletedRow
			summary    []byte
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Stage, &row.MainStageNumber, &row.Reason, &summary, &occurredAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(summary, &row.Summary); err != nil {
			return nil, err
		}
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertSubstageSummary(runID string, ev rp.SubstageSummaryEvent, at time.Time) error {
	summary, err := json.Marshal(ev.Summary)
	if err != nil {
		return err
	}

	_, err = psql.Insert("substage_summaries").
		SetMap(map[string]any{
			"run_id":      runID,
			"stage":       ev.Stage,
			"summary":     summary,
			"occurred_at": at,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) SubstageSummaries(runID string) ([]rp.SubstageSummaryRow, error) {
	rows, err := psql.Select("stage", "summary", "occurred_at").
		From("substage_summaries").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.SubstageSummaryRow{}
	for rows.Next() {
		var (
			row        rp.SubstageSummaryRow
			summary    []byte
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Stage, &summary, &occurredAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(summary, &row.Summary); err != nil {
			return nil, err
		}
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertPaperProgress(runID string, ev rp.PaperGenerationProgressEvent, at time.Time) error {
	_, err := psql.Insert("paper_generation_progress").
		SetMap(map[string]any{
			"run_id":        runID,
			"step":          ev.Step,
			"substep":       nullStr(ev.Substep),
			"progress":      ev.Progress,
			"step_progress": ev.StepProgress,
			"details":       nullStr(ev.Details),
			"occurred_at":   at,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) PaperProgress(runID string, limit int) ([]rp.PaperProgressRow, error) {
	query := psql.Select("step", "substep", "progress", "step_progress", "details", "occurred_at").
		From("paper_generation_progress").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.RunWith(repo.conn).Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.PaperProgressRow{}
	for rows.Next() {
		var (
			row        rp.PaperProgressRow
			substep    sql.NullString
			details    sql.NullString
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Step, &substep, &row.Progress, &row.StepProgress, &details, &occurredAt); err != nil {
			return nil, err
		}
		row.Substep = substep.String
		row.Details = details.String
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) UpsertTreeViz(runID string, ev rp.TreeVizEvent, at time.Time) error {
	viz, err := json.Marshal(ev.Viz)
	if err != nil {
		return err
	}

	_, err = psql.Insert("tree_viz").
		Columns("run_id", "stage_id", "viz", "version", "occurred_at").
		Values(runID, ev.StageID, viz, ev.Version, at).
		Suffix(`
			ON CONFLICT (run_id, stage_id) DO UPDATE SET
				viz = EXCLUDED.viz,
				version = EXCLUDED.version,
				occurred_at = EXCLUDED.occurred_at
		`).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) TreeViz(runID string) ([]rp.TreeVizRow, error) {
	rows, err := psql.Select("stage_id", "viz", "version", "occurred_at").
		From("tree_viz").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("stage_id ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.TreeVizRow{}
	for rows.Next() {
		var (
			row        rp.TreeVizRow
			viz        []byte
			occurredAt time.Time
		)
		if err := rows.Scan(&row.StageID, &viz, &row.Version, &occurredAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(viz, &row.Viz); err != nil {
			return nil, err
		}
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) UpsertStageSkipWindow(runID string, ev rp.StageSkipWindowEvent, at time.Time) error {
	_, err := psql.Insert("stage_skip_windows").
		Columns("run_id", "stage", "state", "window_timestamp", "reason", "occurred_at").
		Values(runID, ev.Stage, ev.State, ev.Timestamp, nullStr(ev.Reason), at).
		Suffix(`
			ON CONFLICT (run_id, stage) DO UPDATE SET
				state = EXCLUDED.state,
				window_timestamp = EXCLUDED.window_timestamp,
				reason = EXCLUDED.reason,
				occurred_at = EXCLUDED.occurred_at
		`).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) StageSkipWindows(runID string) ([]rp.StageSkipWindowRow, error) {
	rows, err := psql.Select("stage", "state", "window_timestamp", "reason", "occurred_at").
		From("stage_skip_windows").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("stage ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.StageSkipWindowRow{}
	for rows.Next() {
		var (
			row        rp.StageSkipWindowRow
			reason     sql.NullString
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Stage, &row.State, &row.Timestamp, &reason, &occurredAt); err != nil {
			return nil, err
		}
		row.Reason = reason.String
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertRunLog(runID string, ev rp.RunLogEvent, at time.Time) error {
	_, err := psql.Insert("run_logs").
		Columns("run_id", "level", "message", "occurred_at").
		Values(runID, ev.Level, ev.Message, at).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) RunLogs(runID string, limit int) ([]rp.RunLogRow, error) {
	query := psql.Select("level", "message", "occurred_at").
		From("run_logs").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.RunWith(repo.conn).Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.RunLogRow{}
	for rows.Next() {
		var (
			row        rp.RunLogRow
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Level, &row.Message, &occurredAt); err != nil {
			return nil, err
		}
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertBestNode(runID string, ev rp.BestNodeSelectionEvent, at time.Time) error {
	_, err := psql.Insert("best_node_selections").
		SetMap(map[string]any{
			"run_id":      runID,
			"stage":       ev.Stage,
			"node_index":  ev.NodeIndex,
			"metric":      ev.Metric,
			"reason":      nullStr(ev.Reason),
			"occurred_at": at,
		}).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) BestNodes(runID string) ([]rp.BestNodeRow, error) {
	rows, err := psql.Select("stage", "node_index", "metric", "reason", "occurred_at").
		From("best_node_selections").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurred_at ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.BestNodeRow{}
	for rows.Next() {
		var (
			row        rp.BestNodeRow
			metric     sql.NullFloat64
			reason     sql.NullString
			occurredAt time.Time
		)
		if err := rows.Scan(&row.Stage, &row.NodeIndex, &metric, &reason, &occurredAt); err != nil {
			return nil, err
		}
		if metric.Valid {
			row.Metric = &metric.Float64
		}
		row.Reason = reason.String
		row.OccurredAt = occurredAt.Unix()
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) UpsertCodeExecutionStarted(runID string, ev rp.RunningCodeEvent) error {
	_, err := psql.Insert("code_executions").
		Columns(
			"run_id", "execution_id", "stage_name", "run_type",
			"execution_type", "status", "code", "node_index", "started_at",
		).
		Values(
			runID, ev.ExecutionID, ev.StageName, ev.RunType,
			ev.ExecutionType, "running", ev.Code, ev.NodeIndex, ev.StartedAt,
		).
		Suffix(`
			ON CONFLICT (run_id, execution_id) DO UPDATE SET
				stage_name = EXCLUDED.stage_name,
				run_type = EXCLUDED.run_type,
				execution_type = EXCLUDED.execution_type,
				status = EXCLUDED.status,
				code = EXCLUDED.code,
				node_index = EXCLUDED.node_index,
				started_at = EXCLUDED.started_at
		`).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) UpsertCodeExecutionCompleted(runID string, ev rp.CodeRunCompletedEvent) error {
	_, err := psql.Insert("code_executions").
		Columns(
			"run_id", "execution_id", "stage_name", "run_type",
			"execution_type", "status", "exec_time", "node_index", "completed_at",
		).
		Values(
			runID, ev.ExecutionID, ev.StageName, ev.RunType,
			ev.ExecutionType, ev.Status, ev.ExecTime, ev.NodeIndex, ev.CompletedAt,
		).
		Suffix(`
			ON CONFLICT (run_id, execution_id) DO UPDATE SET
				stage_name = EXCLUDED.stage_name,
				run_type = EXCLUDED.run_type,
				execution_type = EXCLUDED.execution_type,
				status = EXCLUDED.status,
				exec_time = EXCLUDED.exec_time,
				node_index = EXCLUDED.node_index,
				completed_at = EXCLUDED.completed_at
		`).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) LatestCodeExecution(runID string) (*rp.CodeExecutionRow, error) {
	row := psql.Select(
		"execution_id", "stage_name", "run_type", "execution_type",
		"status", "code", "exec_time", "node_index", "started_at", "completed_at",
	).
		From("code_executions").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("GREATEST(COALESCE(started_at, ''), COALESCE(completed_at, '')) DESC").
		Limit(1).
		RunWith(repo.conn).
		QueryRow()

	exec, err := scanCodeExecution(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return exec, nil
}

func scanCodeExecution(row scannable) (*rp.CodeExecutionRow, error) {
	var (
		exec        rp.CodeExecutionRow
		code        sql.NullString
		execTime    sql.NullFloat64
		nodeIndex   sql.NullInt64
		startedAt   sql.NullString
		completedAt sql.NullString
	)
	err := row.Scan(
		&exec.ExecutionID, &exec.StageName, &exec.RunType, &exec.ExecutionType,
		&exec.Status, &code, &execTime, &nodeIndex, &startedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	exec.Code = code.String
	exec.ExecTime = execTime.Float64
	if nodeIndex.Valid {
		idx := int(nodeIndex.Int64)
		exec.NodeIndex = &idx
	}
	exec.StartedAt = startedAt.String
	exec.CompletedAt = completedAt.String
	return &exec, nil
}

func (repo *projectionRepository) UpsertArtifact(runID, s3Key string, ev rp.ArtifactUploadedEvent) error {
	_, err := psql.Insert("run_artifacts").
		Columns("run_id", "s3_key", "artifact_type", "filename", "file_size", "file_type", "created_at").
		Values(runID, s3Key, ev.ArtifactType, ev.Filename, ev.FileSize, ev.FileType, ev.CreatedAt).
		Suffix(`
			ON CONFLICT (run_id, s3_key) DO UPDATE SET
				file_size = EXCLUDED.file_size,
				file_type = EXCLUDED.file_type,
				created_at = EXCLUDED.created_at
		`).
		RunWith(repo.conn).
		Exec()
	return err
}

func (repo *projectionRepository) Artifacts(runID string) ([]rp.ArtifactRow, error) {
	rows, err := psql.Select("s3_key", "artifact_type", "filename", "file_size", "file_type", "created_at").
		From("run_artifacts").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("created_at ASC").
		RunWith(repo.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	result := []rp.ArtifactRow{}
	for rows.Next() {
		var row rp.ArtifactRow
		err := rows.Scan(&row.S3Key, &row.ArtifactType, &row.Filename, &row.FileSize, &row.FileType, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (repo *projectionRepository) InsertLlmReview(runID string, ev rp.LlmReviewEvent, at time.Time) (int, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return 0, err
	}

	var id int
	err = psql.Insert("llm_reviews").
		Columns("run_id", "overall", "decision", "payload", "occurred_at").
		Values(runID, ev.Overall, ev.Decision, payload, at).
		Suffix("RETURNING id").
		RunWith(repo.conn).
		QueryRow().
		Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (repo *projectionRepository) InsertFigureReviews(runID string, reviews []rp.VlmFigureReview, at time.Time) error {
	if len(reviews) == 0 {
		return nil
	}

	insert := psql.Insert("vlm_figure_reviews").
		Columns(
			"run_id", "figure_name", "img_description", "img_review",
			"caption_review", "figrefs_review", "source_path", "occurred_at",
		)
	for _, review := range reviews {
		insert = insert.Values(
			runID, review.FigureName, review.ImgDescription, review.ImgReview,
			review.CaptionReview, review.FigrefsReview, nullStr(review.SourcePath), at,
		)
	}

	_, err := insert.RunWith(repo.conn).Exec()
	return err
}

func (repo *projectionRepository) InsertCodexEvent(runID string, payload json.RawMessage, at time.Time) error {
	_, err := psql.Insert("codex_events").
		Columns("run_id", "payload", "occurred_at").
		Values(runID, []byte(payload), at).
		RunWith(repo.conn).
		Exec()
	return err
}
