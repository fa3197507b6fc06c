package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"arena/contexts/league/lookup-service/domain/entities"
	domainerrors "arena/contexts/league/lookup-service/domain/errors"
	"arena/contexts/league/lookup-service/ports"

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
	return []any{&leagueModel{}, &teamModel{}, &playerModel{}}
}

func (r *Repository) IsValid(ctx context.Context, leagueID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&leagueModel{}).
		Where("id = ?", leagueID).
		Count(&count).Error; err != nil {
		return false, r.logError("lookup_repo_league_is_valid_failed", err, "league_id", leagueID)
	}
	return count > 0, nil
}

func (r *Repository) GetForLeague(ctx context.Context, leagueID int64) ([]entities.Team, error) {
	var rows []teamModel
	if err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("lookup_repo_teams_for_league_failed", err, "league_id", leagueID)
	}
	return toTeamEntities(rows), nil
}

func (r *Repository) GetByID(ctx context.Context, playerID int64) (entities.Player, bool, error) {
	var row playerModel
	err := r.db.WithContext(ctx).
		Where("id = ?", playerID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Player{}, false, nil
		}
		return entities.Player{}, false, r.logError("lookup_repo_get_player_failed", err, "player_id", playerID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetForTeam(ctx context.Context, teamID int64) ([]entities.Player, error) {
	var rows []playerModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("lookup_repo_players_for_team_failed", err, "team_id", teamID)
	}
	return toPlayerEntities(rows), nil
}

// SaveLeague, SaveTeam and SavePlayer upsert by primary key. They back the
// demo seeding in bootstrap.
func (r *Repository) SaveLeague(ctx context.Context, league entities.League) error {
	row := leagueModel{ID: league.ID, Name: league.Name}
	return r.upsert(ctx, &row, []string{"name"}, "lookup_repo_save_league_failed", "league_id", league.ID)
}

func (r *Repository) SaveTeam(ctx context.Context, team entities.Team) error {
	row := teamModelFromEntity(team)
	return r.upsert(ctx, &row, []string{"name", "league_id", "founding_date"}, "lookup_repo_save_team_failed", "team_id", team.ID)
}

func (r *Repository) SavePlayer(ctx context.Context, player entities.Player) error {
	row := playerModelFromEntity(player)
	return r.upsert(ctx, &row, []string{"first_name", "last_name", "date_of_birth", "team_id"}, "lookup_repo_save_player_failed", "player_id", player.ID)
}

func (r *Repository) upsert(ctx context.Context, row any, columns []string, event string, attrs ...any) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(row).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return r.logError(event, err, attrs...)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "league/lookup-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("lookup repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.LeagueRepository = (*Repository)(nil)
var _ ports.TeamRepository = (*Repository)(nil)
var _ ports.PlayerRepository = (*Repository)(nil)
