package services

import (
	"errors"
	"fmt"
	"testing"

	"nunis-api/entity"
	"nunis-api/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *TransactionService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Category{}, &entity.Menu{},
		&entity.Transaction{}, &entity.TransactionDetail{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedCustomer(t *testing.T, s *TransactionService, email string) *entity.User {
	t.Helper()
	u := &entity.User{Nama: "Tester", Email: email, Role: "customer", Phone: "0812", Address: "Jl. Raya"}
	if err := s.UserRepo.Create(u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedMenu(t *testing.T, s *TransactionService, kode string, price int64, active int) {
	t.Helper()
	m := &entity.Menu{KodeMenu: kode, Name: "Menu " + kode, Price: price, StatusActive: active}
	if err := s.MenuRepo.Create(m); err != nil {
		t.Fatalf("seed menu: %v", err)
	}
}

func TestCheckoutPricesFromCatalog(t *testing.T) {
	s := newTestService(t)
	u := seedCustomer(t, s, "a@nunis.id")
	seedMenu(t, s, "M001", 15000, 1)
	seedMenu(t, s, "M002", 5000, 1)

	tr, err := s.Checkout(u.ID, &CheckoutIn{Items: []CheckoutItemIn{
		{KodeMenu: "M001", Jumlah: 2},
		{KodeMenu: "M002", Jumlah: 1},
	}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if tr.SubTotal != 35000 || tr.Total != 35000 {
		t.Errorf("totals = %d/%d, want 35000/35000", tr.SubTotal, tr.Total)
	}
	if len(tr.Details) != 2 {
		t.Errorf("details = %d, want 2", len(tr.Details))
	}
	if tr.NoTelepon != "0812" || tr.Alamat != "Jl. Raya" {
		t.Errorf("contact not copied from profile: %q %q", tr.NoTelepon, tr.Alamat)
	}
}

func TestCheckoutRejectsUnknownAndInactiveMenus(t *testing.T) {
	s := newTestService(t)
	u := seedCustomer(t, s, "b@nunis.id")
	seedMenu(t, s, "M001", 15000, 0)

	for _, kode := range []string{"M001", "MISSING"} {
		_, err := s.Checkout(u.ID, &CheckoutIn{Items: []CheckoutItemIn{{KodeMenu: kode, Jumlah: 1}}})
		if !errors.Is(err, ErrMenuUnavailable) {
			t.Errorf("kode %s: err = %v, want ErrMenuUnavailable", kode, err)
		}
	}
}

func TestTranslateCreateErr(t *testing.T) {
	cases := []struct {
		in   error
		want error
	}{
		{gorm.ErrDuplicatedKey, ErrTransactionExists},
		{fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), ErrTransactionExists},
		{gorm.ErrInvalidData, gorm.ErrInvalidData},
	}
	for _, c := range cases {
		if got := translateCreateErr(c.in); !errors.Is(got, c.want) {
			t.Errorf("translateCreateErr(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUpdateStatusReturnsPreviousStatus(t *testing.T) {
	s := newTestService(t)
	u := seedCustomer(t, s, "c@nunis.id")
	seedMenu(t, s, "M001", 10000, 1)
	tr, err := s.Checkout(u.ID, &CheckoutIn{Items: []CheckoutItemIn{{KodeMenu: "M001", Jumlah: 1}}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	got, prev, err := s.UpdateStatusByFaktur(tr.Faktur, entity.StatusPesananDiterima)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if prev != entity.StatusMenungguKonfirmasi {
		t.Errorf("previous = %d, want %d", prev, entity.StatusMenungguKonfirmasi)
	}
	if got.Status != entity.StatusPesananDiterima {
		t.Errorf("status = %d, want %d", got.Status, entity.StatusPesananDiterima)
	}

	// no-op update reports the unchanged status as both sides
	got, prev, err = s.UpdateStatusByFaktur(tr.Faktur, entity.StatusPesananDiterima)
	if err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if prev != got.Status {
		t.Errorf("no-op previous = %d, status = %d, want equal", prev, got.Status)
	}
}

func TestUpdateStatusTerminalIsFinal(t *testing.T) {
	s := newTestService(t)
	u := seedCustomer(t, s, "d@nunis.id")
	seedMenu(t, s, "M001", 10000, 1)
	tr, err := s.Checkout(u.ID, &CheckoutIn{Items: []CheckoutItemIn{{KodeMenu: "M001", Jumlah: 1}}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, _, err := s.UpdateStatusByFaktur(tr.Faktur, entity.StatusPesananSelesai); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, _, err := s.UpdateStatusByFaktur(tr.Faktur, entity.StatusSedangDiproses); !errors.Is(err, ErrTerminalStatus) {
		t.Errorf("err = %v, want ErrTerminalStatus", err)
	}
}

func TestStatisticsCountsRegisteredCustomers(t *testing.T) {
	s := newTestService(t)
	seedMenu(t, s, "M001", 10000, 1)

	buyer := seedCustomer(t, s, "buyer@nunis.id")
	seedCustomer(t, s, "idle1@nunis.id")
	seedCustomer(t, s, "idle2@nunis.id")
	admin := &entity.User{Nama: "Admin", Email: "admin@nunis.id", Role: "admin"}
	if err := s.UserRepo.Create(admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := s.Checkout(buyer.ID, &CheckoutIn{Items: []CheckoutItemIn{{KodeMenu: "M001", Jumlah: 1}}}); err != nil {
			t.Fatalf("checkout %d: %v", i, err)
		}
	}

	stats, err := s.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.JumlahOrder != 2 {
		t.Errorf("orders = %d, want 2", stats.JumlahOrder)
	}
	// registered customers, not just the ones who have ordered
	if stats.JumlahClient != 3 {
		t.Errorf("clients = %d, want 3", stats.JumlahClient)
	}
}
