package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"arena/contexts/elections/ballot-box/domain/entities"
	domainerrors "arena/contexts/elections/ballot-box/domain/errors"
	"arena/contexts/elections/ballot-box/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Models lists the gorm models owned by this adapter for migrations.
func Models() []any {
	return []any{&ballotBoxModel{}, &candidateModel{}}
}

// SaveBallotBox upserts the box row and rewrites its candidate rows so the
// stored positions always match the aggregate's insertion order.
func (r *Repository) SaveBallotBox(ctx context.Context, box *entities.BallotBox) error {
	if box == nil || strings.TrimSpace(box.ID()) == "" {
		return domainerrors.ErrInvalidBallotBoxID
	}
	snapshot := box.Snapshot()
	row := ballotBoxModelFromSnapshot(snapshot, time.Now().UTC())
	candidates := candidateModelsFromSnapshot(snapshot)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"election_active": row.ElectionActive,
				"winner_name":     row.WinnerName,
				"winner_votes":    row.WinnerVotes,
				"updated_at":      row.UpdatedAt,
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
		if err := tx.Where("ballot_box_id = ?", row.ID).Delete(&candidateModel{}).Error; err != nil {
			return err
		}
		if len(candidates) == 0 {
			return nil
		}
		return tx.Create(&candidates).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return r.logError("ballot_box_repo_save_failed", err, "box_id", row.ID)
	}
	return nil
}

func (r *Repository) GetBallotBox(ctx context.Context, boxID string) (*entities.BallotBox, error) {
	boxID = strings.TrimSpace(boxID)
	var row ballotBoxModel
	err := r.db.WithContext(ctx).
		Where("id = ?", boxID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBallotBoxNotFound
		}
		return nil, r.logError("ballot_box_repo_get_failed", err, "box_id", boxID)
	}

	var candidates []candidateModel
	if err := r.db.WithContext(ctx).
		Where("ballot_box_id = ?", boxID).
		Order("position ASC").
		Find(&candidates).Error; err != nil {
		return nil, r.logError("ballot_box_repo_list_candidates_failed", err, "box_id", boxID)
	}
	return entities.RestoreBallotBox(row.toSnapshot(candidates)), nil
}

func (r *Repository) ListBallotBoxIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&ballotBoxModel{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, r.logError("ballot_box_repo_list_failed", err)
	}
	if ids == nil {
		ids = make([]string, 0)
	}
	return ids, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "elections/ballot-box",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("ballot box repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.BallotBoxRepository = (*Repository)(nil)
