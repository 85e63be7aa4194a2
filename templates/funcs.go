// Package templates menyematkan seluruh layar HTML beserta helper
// pemformatan mata uang dan tanggal lokal Indonesia.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed *.html
var files embed.FS

// Parse membangun seluruh template yang disematkan di binary.
func Parse() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "*.html"))
}

// Funcs mengembalikan helper yang dipakai template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"rupiah":      Rupiah,
		"tanggal":     Tanggal,
		"statusClass": StatusClass,
		"pages":       Pages,
		"add":         func(a, b int) int { return a + b },
	}
}

var bulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var hari = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// Rupiah memformat nilai sebagai "Rp 25.000" tanpa desimal.
func Rupiah(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	neg := n < 0
	if neg {
		n = -n
	}

	digits := []byte{}
	for i := 0; ; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, '.')
		}
		digits = append(digits, byte('0'+n%10))
		n /= 10
		if n == 0 {
			break
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	var b strings.Builder
	b.WriteString("Rp ")
	if neg {
		b.WriteByte('-')
	}
	b.Write(digits)
	return b.String()
}

// Tanggal memformat waktu dalam gaya Indonesia, misalnya
// "Senin, 02 Januari 2006 15:04". Waktu nol menghasilkan tanda hubung.
func Tanggal(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s, %02d %s %d %02d:%02d",
		hari[int(t.Weekday())], t.Day(), bulan[int(t.Month())-1],
		t.Year(), t.Hour(), t.Minute())
}

// StatusClass memetakan status pesanan ke kelas warna badge.
// Perbandingan tidak mempedulikan kapitalisasi.
func StatusClass(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return "badge-green"
	case "pending":
		return "badge-yellow"
	case "canceled":
		return "badge-red"
	default:
		return "badge-gray"
	}
}

// Pages menghasilkan nomor halaman 1..n untuk tautan paginasi.
func Pages(n int) []int {
	if n < 1 {
		n = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
