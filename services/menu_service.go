package services

import (
	"math"
	"strings"
	"time"

	"nunis-api/cart"
	"nunis-api/entity"
	"nunis-api/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuIn struct {
	KodeMenu     string   `json:"kode_menu" binding:"required"`
	CategoryID   uint     `json:"category_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Price        int64    `json:"price" binding:"min=0"`
	DiskonPersen *float64 `json:"diskon_persen"`
	DiskonRupiah *int64   `json:"diskon_rupiah"`
	StatusActive int      `json:"statusActive"`
}

// resolveDiskon keeps persen and rupiah mutually consistent: whichever the
// caller supplied drives the other, clamped so diskon never exceeds price.
// With both given, rupiah wins.
func resolveDiskon(price int64, persen *float64, rupiah *int64) (float64, int64) {
	switch {
	case rupiah != nil:
		p := cart.DiskonPersen(float64(price), float64(*rupiah))
		return p, int64(math.Round(cart.DiskonRupiah(float64(price), p)))
	case persen != nil:
		r := cart.DiskonRupiah(float64(price), *persen)
		p := cart.DiskonPersen(float64(price), r)
		return p, int64(math.Round(r))
	default:
		return 0, 0
	}
}

func (s *MenuService) ListAll() ([]entity.Menu, error)    { return s.Repo.ListAll() }
func (s *MenuService) ListActive() ([]entity.Menu, error) { return s.Repo.ListActive() }

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	persen, rupiah := resolveDiskon(in.Price, in.DiskonPersen, in.DiskonRupiah)
	m := &entity.Menu{
		KodeMenu:     strings.TrimSpace(in.KodeMenu),
		CategoryID:   in.CategoryID,
		Name:         strings.TrimSpace(in.Name),
		Image:        in.Image,
		Description:  in.Description,
		Price:        in.Price,
		DiskonPersen: persen,
		DiskonRupiah: rupiah,
		StatusActive: in.StatusActive,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

type MenuEditIn struct {
	KodeMenu     string   `json:"kode_menu" binding:"required"`
	CategoryID   *uint    `json:"category_id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Price        *int64   `json:"price"`
	DiskonPersen *float64 `json:"diskon_persen"`
	DiskonRupiah *int64   `json:"diskon_rupiah"`
	StatusActive *int     `json:"statusActive"`
}

func (s *MenuService) Update(in *MenuEditIn) (*entity.Menu, error) {
	m, err := s.Repo.FindByKode(in.KodeMenu)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Name != "" {
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Image != "" {
		updates["image"] = in.Image
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.StatusActive != nil {
		updates["status_active"] = *in.StatusActive
	}

	price := m.Price
	if in.Price != nil {
		price = *in.Price
		updates["price"] = price
	}
	if in.DiskonPersen != nil || in.DiskonRupiah != nil || in.Price != nil {
		persen, rupiah := in.DiskonPersen, in.DiskonRupiah
		if persen == nil && rupiah == nil {
			// price changed alone: re-derive from the stored persen
			persen = &m.DiskonPersen
		}
		p, r := resolveDiskon(price, persen, rupiah)
		updates["diskon_persen"] = p
		updates["diskon_rupiah"] = r
	}

	if len(updates) > 0 {
		if _, err := s.Repo.UpdateByKode(in.KodeMenu, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByKode(in.KodeMenu)
}

func (s *MenuService) Delete(kodeMenu string) error {
	affected, err := s.Repo.DeleteByKode(kodeMenu)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MenuService) BestSellers(start, end time.Time, limit int) ([]repository.BestSeller, error) {
	return s.Repo.BestSellers(start, end, limit)
}
