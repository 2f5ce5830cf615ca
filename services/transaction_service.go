package services

import (
	"errors"
	"time"

	"nunis-api/cart"
	"nunis-api/entity"
	"nunis-api/repository"
	"nunis-api/utils"

	"gorm.io/gorm"
)

type TransactionService struct {
	DB       *gorm.DB
	Repo     *repository.TransactionRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

var (
	ErrNoItems           = errors.New("items is required")
	ErrTotalsMismatch    = errors.New("totals do not add up")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrTerminalStatus    = errors.New("transaction already finished")
	ErrStatusConflict    = errors.New("status changed concurrently")
	ErrMenuUnavailable   = errors.New("menu not available")
	ErrTransactionExists = errors.New("faktur already exists")
)

func NewTransactionService(db *gorm.DB, repo *repository.TransactionRepository, menuRepo *repository.MenuRepository, userRepo *repository.UserRepository) *TransactionService {
	return &TransactionService{DB: db, Repo: repo, MenuRepo: menuRepo, UserRepo: userRepo}
}

// ----- submission payload, as assembled by the storefront -----

type TransactionItemIn struct {
	KodeMenu         string  `json:"kode_menu" binding:"required"`
	Name             string  `json:"name"`
	Count            int     `json:"count" binding:"min=1"`
	SubTotalItem     int64   `json:"sub_total_item"`
	TotalItem        int64   `json:"total_item"`
	DiskonRupiahItem int64   `json:"diskon_rupiah_item"`
	DiskonPersenItem float64 `json:"diskon_persen_item"`
}

type CreateTransactionIn struct {
	UserID       uint                `json:"id_user" binding:"required"`
	NoTelepon    string              `json:"no_telepon"`
	Alamat       string              `json:"alamat"`
	SubTotal     int64               `json:"sub_total"`
	Total        int64               `json:"total"`
	DiskonPersen float64             `json:"diskon_persen"`
	DiskonRupiah int64               `json:"diskon_rupiah"`
	Tanggal      time.Time           `json:"tanggal"`
	Items        []TransactionItemIn `json:"items" binding:"required"`
	Notes        string              `json:"notes"`
}

// Create persists a client-computed submission. The monetary identity
// sub_total - total == diskon_rupiah is enforced before anything is written.
func (s *TransactionService) Create(in *CreateTransactionIn) (*entity.Transaction, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if in.SubTotal-in.Total != in.DiskonRupiah {
		return nil, ErrTotalsMismatch
	}
	for _, it := range in.Items {
		if it.SubTotalItem-it.TotalItem != it.DiskonRupiahItem {
			return nil, ErrTotalsMismatch
		}
	}

	if _, err := s.UserRepo.FindByID(in.UserID); err != nil {
		return nil, errors.New("user not found")
	}

	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = time.Now()
	}

	t := &entity.Transaction{
		Faktur:       utils.NewFaktur(tanggal),
		UserID:       in.UserID,
		NoTelepon:    in.NoTelepon,
		Alamat:       in.Alamat,
		SubTotal:     in.SubTotal,
		Total:        in.Total,
		DiskonPersen: in.DiskonPersen,
		DiskonRupiah: in.DiskonRupiah,
		Tanggal:      tanggal,
		Notes:        in.Notes,
		Status:       entity.StatusMenungguKonfirmasi,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, t); err != nil {
			return err
		}
		for _, it := range in.Items {
			d := &entity.TransactionDetail{
				Faktur:           t.Faktur,
				KodeMenu:         it.KodeMenu,
				Name:             it.Name,
				Jumlah:           it.Count,
				SubTotal:         it.SubTotalItem,
				Total:            it.TotalItem,
				DiskonRupiahItem: it.DiskonRupiahItem,
				DiskonPersenItem: it.DiskonPersenItem,
			}
			if err := s.Repo.CreateDetail(tx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateCreateErr(err)
	}
	return s.Repo.FindByFaktur(t.Faktur)
}

// translateCreateErr maps a unique-index violation on faktur to the
// sentinel the API layer turns into a 409.
func translateCreateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTransactionExists
	}
	return err
}

// ----- server-side checkout -----

type CheckoutItemIn struct {
	KodeMenu string `json:"kode_menu" binding:"required"`
	Jumlah   int    `json:"jumlah" binding:"min=1"`
}

type CheckoutIn struct {
	Items []CheckoutItemIn `json:"items" binding:"required"`
	Notes string           `json:"notes"`
}

// Checkout builds a cart from current catalog prices instead of trusting
// client arithmetic, then submits it as a transaction.
func (s *TransactionService) Checkout(userID uint, in *CheckoutIn) (*entity.Transaction, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	kodes := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		kodes = append(kodes, it.KodeMenu)
	}
	menus, err := s.MenuRepo.FindByKodes(kodes)
	if err != nil {
		return nil, err
	}
	byKode := make(map[string]entity.Menu, len(menus))
	for _, m := range menus {
		byKode[m.KodeMenu] = m
	}

	k := cart.New()
	for _, it := range in.Items {
		m, ok := byKode[it.KodeMenu]
		if !ok || m.StatusActive != 1 {
			return nil, ErrMenuUnavailable
		}
		if err := k.Add(cart.Item{
			KodeMenu:     m.KodeMenu,
			Name:         m.Name,
			Price:        m.Price,
			DiskonPersen: m.DiskonPersen,
			DiskonRupiah: m.DiskonRupiah,
		}, it.Jumlah); err != nil {
			return nil, err
		}
	}

	totals, err := k.Checkout()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &entity.Transaction{
		Faktur:       utils.NewFaktur(now),
		UserID:       user.ID,
		NoTelepon:    user.Phone,
		Alamat:       user.Address,
		SubTotal:     totals.SubTotal,
		Total:        totals.Total,
		DiskonPersen: totals.DiskonPersen,
		DiskonRupiah: totals.DiskonRupiah,
		Tanggal:      now,
		Notes:        in.Notes,
		Status:       entity.StatusMenungguKonfirmasi,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, t); err != nil {
			return err
		}
		for _, ln := range k.Lines() {
			diskon := ln.TotalPrice - ln.TotalDiscount
			var persen float64
			if ln.TotalPrice > 0 {
				persen = float64(diskon) / float64(ln.TotalPrice) * 100
			}
			d := &entity.TransactionDetail{
				Faktur:           t.Faktur,
				KodeMenu:         ln.KodeMenu,
				Name:             ln.Name,
				Jumlah:           ln.Qty,
				SubTotal:         ln.TotalPrice,
				Total:            ln.TotalDiscount,
				DiskonRupiahItem: diskon,
				DiskonPersenItem: persen,
			}
			if err := s.Repo.CreateDetail(tx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateCreateErr(err)
	}
	return s.Repo.FindByFaktur(t.Faktur)
}

// ----- listing -----

func (s *TransactionService) ListAll() ([]entity.Transaction, error) {
	return s.Repo.ListAll()
}

func (s *TransactionService) ListForUser(userID uint, start *time.Time) ([]entity.Transaction, error) {
	return s.Repo.ListForUser(userID, start)
}

func (s *TransactionService) ListByDateRange(start, end time.Time) ([]entity.Transaction, error) {
	return s.Repo.ListByDateRange(start, end)
}

func (s *TransactionService) Detail(faktur string) (*entity.Transaction, error) {
	return s.Repo.FindByFaktur(faktur)
}

// ----- status lifecycle -----

// UpdateStatusByFaktur moves a transaction through the 0..5 lifecycle and
// returns the updated row together with the status it moved away from.
// Finished and cancelled orders are terminal; the update is guarded against
// a concurrent change by another admin session.
func (s *TransactionService) UpdateStatusByFaktur(faktur string, newStatus int) (*entity.Transaction, int, error) {
	if newStatus < entity.StatusMenungguKonfirmasi || newStatus > entity.StatusPesananDibatalkan {
		return nil, 0, ErrUnknownStatus
	}

	t, err := s.Repo.FindByFaktur(faktur)
	if err != nil {
		return nil, 0, err
	}
	previous := t.Status
	if previous == entity.StatusPesananSelesai || previous == entity.StatusPesananDibatalkan {
		return nil, 0, ErrTerminalStatus
	}
	if previous == newStatus {
		return t, previous, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, faktur, previous, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	t, err = s.Repo.FindByFaktur(faktur)
	if err != nil {
		return nil, 0, err
	}
	return t, previous, nil
}

// ----- statistics -----

// Statistics reports all-time totals. The client figure is the registered
// customer count; ranged statistics count distinct transacting customers
// instead.
func (s *TransactionService) Statistics() (*repository.Stats, error) {
	stats, err := s.Repo.Statistics(nil, nil)
	if err != nil {
		return nil, err
	}
	clients, err := s.UserRepo.CountCustomers()
	if err != nil {
		return nil, err
	}
	stats.JumlahClient = clients
	return stats, nil
}

func (s *TransactionService) StatisticsByDate(start, end time.Time) (*repository.Stats, error) {
	return s.Repo.Statistics(&start, &end)
}
