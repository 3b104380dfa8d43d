package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
)

//go:embed templates/index.html
var templateFS embed.FS

// formRows is the number of empty inputs rendered per pool
const formRows = 8

type WebHandler struct {
	rosterService contract.RosterService
	horizon       Horizon
	tmpl          *template.Template
}

func NewWebHandler(rosterService contract.RosterService, horizon Horizon) *WebHandler {
	return &WebHandler{
		rosterService: rosterService,
		horizon:       horizon,
		tmpl:          template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

type scheduleRow struct {
	Date     string
	Internal string
	External string
}

type tallyRow struct {
	Person string
	Counts []int
}

type poolView struct {
	Name   string
	Rows   []scheduleRow
	Months []string
	Tally  []tallyRow
}

type pageData struct {
	Start string
	End   string
	FormA []string
	FormB []string
	Pools []poolView
}

// HandleIndex renders the form on GET and both pools' schedules on POST
func (h *WebHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Start: h.horizon.Start.Format(domain.DisplayDateLayout),
		End:   h.horizon.End.Format(domain.DisplayDateLayout),
		FormA: make([]string, formRows),
		FormB: make([]string, formRows),
	}

	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		poolA := formNames(r.PostForm["prosecutorsA[]"])
		poolB := formNames(r.PostForm["prosecutorsB[]"])

		pools, err := h.runPools([]string{"A", "B"}, [][]string{poolA, poolB})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data.FormA = padForm(poolA)
		data.FormB = padForm(poolB)
		data.Pools = pools
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		log.Printf("Error rendering index: %v", err)
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}

// runPools generates every pool concurrently; runs share nothing so the views are independent
func (h *WebHandler) runPools(names []string, professionals [][]string) ([]poolView, error) {
	views := make([]poolView, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			result, err := h.rosterService.Preview(professionals[i], h.horizon.Start, h.horizon.End)
			if err != nil {
				errs[i] = fmt.Errorf("pool %s: %w", names[i], err)
				return
			}
			views[i] = newPoolView(names[i], professionals[i], result)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return views, nil
}

func newPoolView(name string, professionals []string, result *roster.Result) poolView {
	view := poolView{
		Name:   name,
		Rows:   make([]scheduleRow, 0, len(result.Schedule)),
		Months: result.Tally.Months(),
	}

	for _, a := range result.Schedule {
		internal, _ := a.Get(domain.Internal)
		external, _ := a.Get(domain.External)
		view.Rows = append(view.Rows, scheduleRow{
			Date:     a.Date.Format(domain.DisplayDateLayout),
			Internal: internal,
			External: external,
		})
	}

	for _, p := range professionals {
		counts := make([]int, 0, len(view.Months))
		for _, m := range view.Months {
			counts = append(counts, result.Tally.Get(p, m))
		}
		view.Tally = append(view.Tally, tallyRow{Person: p, Counts: counts})
	}

	return view
}

// formNames drops blank inputs and repeated names, keeping the first position of each
func formNames(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	names := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		names = append(names, v)
	}
	return names
}

func padForm(names []string) []string {
	if len(names) >= formRows {
		return append(names, "")
	}
	return append(names, make([]string, formRows-len(names))...)
}
