package lib

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/chrisnov-it/feathershare/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type exporter struct {
	log *zap.Logger
	db  *gorm.DB
}

// ListSubscribers returns active subscribers newest-first.
func (op *exporter) ListSubscribers(ctx context.Context) (models.Subscribers, error) {
	subs := models.Subscribers{}
	tx := op.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("created_at DESC, id DESC").
		Find(&subs)
	return subs, tx.Error
}

// ExportCSV streams the subscriber list as CSV: a single Email header cell,
// then one normalized email per row, newest-first. encoding/csv applies
// field quoting, though normalized addresses never need it.
func (op *exporter) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := op.db.WithContext(ctx).
		Model(&models.Subscriber{}).
		Where("status = ?", models.StatusActive).
		Order("created_at DESC, id DESC").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	out := csv.NewWriter(w)
	if err := out.Write([]string{"Email"}); err != nil {
		return err
	}
	for rows.Next() {
		sub := models.Subscriber{}
		if err := op.db.ScanRows(rows, &sub); err != nil {
			return err
		}
		if err := out.Write([]string{sub.Email}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	out.Flush()
	return out.Error()
}

func ExportFilename(now time.Time) string {
	return fmt.Sprintf("feathershare-subscribers-%s.csv", now.Format("2006-01-02"))
}
