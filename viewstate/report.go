package viewstate

import (
	"context"
	"sort"
	"strings"

	"udoo-web/client"
	"udoo-web/models"
)

// Report adalah state dashboard laporan admin.
type Report struct {
	api  *client.Client
	sess models.Session

	Data   models.Report
	Err    string
	Loaded bool
}

// NewReport membuat state laporan untuk sesi admin yang diberikan.
func NewReport(api *client.Client, sess models.Session) *Report {
	return &Report{api: api, sess: sess}
}

// Fetch memuat ulang agregat laporan.
func (v *Report) Fetch(ctx context.Context) {
	report, err := v.api.AdminReports(ctx, v.sess.Token)
	if err != nil {
		v.Err = "Terjadi kesalahan saat memuat laporan."
		return
	}
	v.Data = report
	v.Err = ""
	v.Loaded = true
}

// TopProducts menurunkan data grafik produk terlaris dari pesanan selesai
// terbaru: nama dinormalisasi (trim + lowercase) supaya varian kapitalisasi
// terakumulasi ke satu batang, lalu diurutkan menurun berdasarkan total.
func (v *Report) TopProducts() []models.TopProduct {
	byName := map[string]*models.TopProduct{}
	var order []string
	for _, o := range v.Data.RecentCompleted {
		key := strings.ToLower(strings.TrimSpace(o.Product.Name))
		entry, ok := byName[key]
		if !ok {
			entry = &models.TopProduct{Name: o.Product.Name}
			byName[key] = entry
			order = append(order, key)
		}
		entry.Total = entry.Total.Add(o.Total)
	}

	out := make([]models.TopProduct, 0, len(order))
	for _, key := range order {
		out = append(out, *byName[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}
