// Package library maintains the crop catalog. Catalog rows can be imported
// from an HTML table (extension pages published by seed vendors); import is
// an upsert by crop id so re-running against the same page is harmless.
package library

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"cropdiary/entities"
	"cropdiary/pkg/record"
)

type Service struct{ r *record.Repository }

func New(r *record.Repository) *Service { return &Service{r: r} }

func (s *Service) List() []entities.LibraryCrop { return s.r.LibraryCrops() }

// ParseHTML extracts catalog rows from the first table in the document.
// Expected columns: crop id, name, category, days to maturity. Rows with an
// empty crop id or name are skipped.
func ParseHTML(r io.Reader) ([]entities.LibraryCrop, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var out []entities.LibraryCrop
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return // header
		}
		cells := row.Find("td").Map(func(_ int, c *goquery.Selection) string {
			return strings.TrimSpace(c.Text())
		})
		if len(cells) < 2 || cells[0] == "" || cells[1] == "" {
			return
		}
		lc := entities.LibraryCrop{
			CropID: cells[0],
			Names:  map[string]string{"en": cells[1]},
		}
		if len(cells) > 2 {
			lc.Category = cells[2]
		}
		if len(cells) > 3 {
			lc.DaysToMaturity, _ = strconv.Atoi(cells[3])
		}
		out = append(out, lc)
	})
	if len(out) == 0 {
		return nil, errors.New("no catalog rows found")
	}
	return out, nil
}

// Merge upserts rows by crop id, bumping the version on every change so
// crops created later pick up the right applied_template_version.
func (s *Service) Merge(rows []entities.LibraryCrop) (added, updated int, err error) {
	existing := s.r.LibraryCrops()
	byCropID := map[string]int{}
	for i, lc := range existing {
		byCropID[lc.CropID] = i
	}
	for _, in := range rows {
		if i, ok := byCropID[in.CropID]; ok {
			cur := &existing[i]
			for k, v := range in.Names {
				if cur.Names == nil {
					cur.Names = map[string]string{}
				}
				cur.Names[k] = v
			}
			if in.Category != "" {
				cur.Category = in.Category
			}
			if in.DaysToMaturity > 0 {
				cur.DaysToMaturity = in.DaysToMaturity
			}
			if in.DefaultCareTemplateID != "" {
				cur.DefaultCareTemplateID = in.DefaultCareTemplateID
			}
			cur.Version++
			updated++
			continue
		}
		in.ID = uuid.NewString()
		in.Version = 1
		existing = append(existing, in)
		byCropID[in.CropID] = len(existing) - 1
		added++
	}
	if !s.r.SaveLibraryCrops(existing) {
		return 0, 0, record.ErrStorage
	}
	return added, updated, nil
}

// Fetch pulls a catalog page with a hard byte cap, mirroring how KB-style
// ingest keeps untrusted pages small.
func Fetch(url string, maxBytes int) ([]byte, error) {
	cl := &http.Client{Timeout: 15 * time.Second}
	resp, err := cl.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, err
	}
	return b, nil
}
