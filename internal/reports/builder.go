package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avikapoor/basketline-backend/internal/pricing"
	"github.com/avikapoor/basketline-backend/pkg/db/models"
)

// FilterAll disables year filtering in the summary report.
const FilterAll = "all"

// YearlyDTO is the top-level rollup for the selected year. The comparison
// fields are omitted when no previous-year spend exists or when no year is
// selected.
type YearlyDTO struct {
	Total             float64  `json:"total"`
	ListCount         int      `json:"list_count"`
	StoreCount        int      `json:"store_count"`
	ItemCount         float64  `json:"item_count"`
	PreviousYearTotal *float64 `json:"previous_year_total,omitempty"`
	PercentChange     *float64 `json:"percent_change,omitempty"`
}

// MonthGroupDTO is one month/year bucket of the monthly rollup.
type MonthGroupDTO struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Store string  `json:"store"`
	Total float64 `json:"total"`
}

// StoreGroupDTO is one store bucket of the store rollup.
type StoreGroupDTO struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Report is the summary consumed by the reports endpoint. Presentation only
// ever sees the distinct store count, never the underlying set.
type Report struct {
	Yearly  YearlyDTO                `json:"yearly"`
	ByMonth map[string]MonthGroupDTO `json:"by_month"`
	ByStore map[string]StoreGroupDTO `json:"by_store"`
}

// BuildReport folds the visible lists into yearly, monthly, and per-store
// rollups. Totals come from each list's stored snapshot, never recomputed
// from items. yearFilter is matched leniently so "2024" selects year 2024.
func BuildReport(lists []models.GroceryList, yearFilter string) Report {
	filter := normalizeFilter(yearFilter)

	report := Report{
		ByMonth: map[string]MonthGroupDTO{},
		ByStore: map[string]StoreGroupDTO{},
	}

	stores := map[string]struct{}{}
	for i := range lists {
		list := &lists[i]
		if !yearMatches(list.Year, filter) {
			continue
		}

		report.Yearly.Total += list.TotalAmount
		report.Yearly.ListCount++
		if list.Store != "" {
			stores[list.Store] = struct{}{}
		}
		for _, item := range list.Items {
			if !item.Completed {
				report.Yearly.ItemCount += item.Quantity
			}
		}

		monthKey := fmt.Sprintf("%d-%d", list.Month, list.Year)
		group, seen := report.ByMonth[monthKey]
		if !seen {
			// When a month/year bucket spans stores, the first store label
			// seen wins. Known limitation of the rollup shape.
			group = MonthGroupDTO{Month: list.Month, Year: list.Year, Store: list.Store}
		}
		group.Total += list.TotalAmount
		report.ByMonth[monthKey] = group

		storeName := list.Store
		if storeName == "" {
			storeName = "Unknown"
		}
		storeGroup := report.ByStore[storeName]
		storeGroup.Total += list.TotalAmount
		storeGroup.Count++
		report.ByStore[storeName] = storeGroup
	}
	report.Yearly.StoreCount = len(stores)
	report.Yearly.Total = pricing.RoundMoney(report.Yearly.Total)

	for key, group := range report.ByMonth {
		group.Total = pricing.RoundMoney(group.Total)
		report.ByMonth[key] = group
	}
	for key, group := range report.ByStore {
		group.Total = pricing.RoundMoney(group.Total)
		report.ByStore[key] = group
	}

	applyYearComparison(&report, lists, filter)
	return report
}

// applyYearComparison sums the previous year's spend over the full unfiltered
// set in a second pass. The comparison is dropped entirely when the previous
// year had no spend.
func applyYearComparison(report *Report, lists []models.GroceryList, filter string) {
	if filter == FilterAll {
		return
	}
	year, err := strconv.Atoi(filter)
	if err != nil {
		return
	}

	var previousTotal float64
	for i := range lists {
		if lists[i].Year == year-1 {
			previousTotal += lists[i].TotalAmount
		}
	}
	if previousTotal == 0 {
		return
	}

	previousTotal = pricing.RoundMoney(previousTotal)
	change := pricing.RoundMoney((report.Yearly.Total - previousTotal) / previousTotal * 100)
	report.Yearly.PreviousYearTotal = &previousTotal
	report.Yearly.PercentChange = &change
}

func normalizeFilter(yearFilter string) string {
	filter := strings.TrimSpace(strings.ToLower(yearFilter))
	if filter == "" {
		return FilterAll
	}
	return filter
}

func yearMatches(year int, filter string) bool {
	if filter == FilterAll {
		return true
	}
	return strconv.Itoa(year) == filter
}
