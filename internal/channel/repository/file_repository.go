package repository

import (
	"context"
	"database/sql"

	model "kurz/internal/channel/model"
	"kurz/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type FileRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrFileNotFound = errors.New("file not found")

func NewFileRepository(db *bun.DB, logger *logger.Logger) *FileRepository {
	return &FileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FileRepository) Save(ctx context.Context, f *model.File) error {
	_, err := r.db.NewInsert().Model(f).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "fileRepo.Save.Insert: ")
	}
	return nil
}

func (r *FileRepository) Get(ctx context.Context, channelID, fileID int64) (*model.File, error) {
	f := new(model.File)
	err := r.db.NewSelect().
		Model(f).
		Where("id = ? AND channel_id = ?", fileID, channelID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, errors.Wrap(err, "fileRepo.Get.Scan: ")
	}
	return f, nil
}

func (r *FileRepository) IncrementDownloaded(ctx context.Context, fileID int64) error {
	_, err := r.db.NewUpdate().
		Model((*model.File)(nil)).
		Set("downloaded = downloaded + 1").
		Where("id = ?", fileID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "fileRepo.IncrementDownloaded.Exec: ")
	}
	return nil
}
