package templates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"25000", "Rp 25.000"},
		{"1500000", "Rp 1.500.000"},
		{"1234567.89", "Rp 1.234.568"},
		{"-25000", "Rp -25.000"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("decimal %q: %v", tt.in, err)
		}
		if got := Rupiah(d); got != tt.want {
			t.Errorf("Rupiah(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTanggal(t *testing.T) {
	// 2 Januari 2006 adalah hari Senin.
	at := time.Date(2006, time.January, 2, 15, 4, 0, 0, time.UTC)
	if got := Tanggal(at); got != "Senin, 02 Januari 2006 15:04" {
		t.Errorf("Tanggal = %q", got)
	}
	if got := Tanggal(time.Time{}); got != "-" {
		t.Errorf("Tanggal(zero) = %q, want -", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[string]string{
		"completed": "badge-green",
		"Completed": "badge-green",
		"PENDING":   "badge-yellow",
		"canceled":  "badge-red",
		"dikirim":   "badge-gray",
	}
	for in, want := range tests {
		if got := StatusClass(in); got != want {
			t.Errorf("StatusClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPages(t *testing.T) {
	if got := Pages(3); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Pages(3) = %v", got)
	}
	if got := Pages(0); len(got) != 1 {
		t.Errorf("Pages(0) = %v, want [1]", got)
	}
}

func TestParse(t *testing.T) {
	tpl := Parse()
	for _, name := range []string{"login.html", "home.html", "cart.html", "reports.html"} {
		if tpl.Lookup(name) == nil {
			t.Errorf("Template %s tidak ditemukan", name)
		}
	}
}
