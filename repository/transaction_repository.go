package repository

import (
	"context"
	"time"

	"nunis-api/entity"
	"nunis-api/poll"

	"gorm.io/gorm"
)

type TransactionRepository struct{ DB *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) CreateDetail(tx *gorm.DB, d *entity.TransactionDetail) error {
	return tx.Create(d).Error
}

func (r *TransactionRepository) FindByFaktur(faktur string) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.Where("faktur = ?", faktur).
		Preload("Details").
		Preload("User").
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns every transaction newest first, details included;
// the admin table filters and paginates client-side.
func (r *TransactionRepository) ListAll() ([]entity.Transaction, error) {
	var ts []entity.Transaction
	err := r.DB.Order("tanggal DESC").
		Preload("Details").
		Preload("User").
		Find(&ts).Error
	return ts, err
}

// ListForUser returns the user's history, optionally from a start date.
func (r *TransactionRepository) ListForUser(userID uint, start *time.Time) ([]entity.Transaction, error) {
	q := r.DB.Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("tanggal >= ?", *start)
	}
	var ts []entity.Transaction
	err := q.Order("tanggal DESC").Preload("Details").Find(&ts).Error
	return ts, err
}

func (r *TransactionRepository) ListByDateRange(start, end time.Time) ([]entity.Transaction, error) {
	var ts []entity.Transaction
	err := r.DB.Where("tanggal BETWEEN ? AND ?", start, end).
		Order("tanggal DESC").
		Preload("Details").
		Preload("User").
		Find(&ts).Error
	return ts, err
}

// UpdateStatusGuard flips the status only when the current value still
// matches what the caller saw, so two admins cannot race each other.
func (r *TransactionRepository) UpdateStatusGuard(tx *gorm.DB, faktur string, from, to int) (int64, error) {
	res := tx.Model(&entity.Transaction{}).
		Where("faktur = ? AND status = ?", faktur, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// Snapshots feeds the change watcher: one row per faktur, status only.
func (r *TransactionRepository) Snapshots(ctx context.Context) ([]poll.Snapshot, error) {
	var snaps []poll.Snapshot
	err := r.DB.WithContext(ctx).Model(&entity.Transaction{}).
		Select("faktur, status").
		Order("tanggal DESC").
		Scan(&snaps).Error
	return snaps, err
}

// Stats is the dashboard summary row.
type Stats struct {
	TotalPenjualan int64 `json:"total_penjualan"`
	JumlahOrder    int64 `json:"jumlah_order"`
	JumlahClient   int64 `json:"jumlah_client"`
}

// Statistics aggregates sales, order count and distinct customers,
// optionally restricted to a date range.
func (r *TransactionRepository) Statistics(start, end *time.Time) (*Stats, error) {
	q := r.DB.Model(&entity.Transaction{}).
		Where("status <> ?", entity.StatusPesananDibatalkan)
	if start != nil && end != nil {
		q = q.Where("tanggal BETWEEN ? AND ?", *start, *end)
	}

	var out Stats
	err := q.Select("COALESCE(SUM(total),0) AS total_penjualan, COUNT(*) AS jumlah_order, COUNT(DISTINCT user_id) AS jumlah_client").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}
