package analytics

import (
	"log/slog"
	"sort"

	"github.com/salescope/salescope/internal/model"
)

// DefaultUnderperformFactor is the fraction of mean per-product revenue
// below which a product counts as underperforming.
const DefaultUnderperformFactor = 0.3

// Engine computes a Summary from the valid transaction set. The computation
// is a pure fold: the same multiset of transactions yields the same Summary
// regardless of input order.
type Engine struct {
	underperformFactor float64
}

// NewEngine creates an analytics engine. A non-positive factor falls back to
// DefaultUnderperformFactor.
func NewEngine(underperformFactor float64) *Engine {
	if underperformFactor <= 0 {
		underperformFactor = DefaultUnderperformFactor
	}
	return &Engine{underperformFactor: underperformFactor}
}

// Analyze aggregates the valid transactions into an immutable Summary. An
// empty input yields a zero-valued Summary, not an error.
func (e *Engine) Analyze(txns []model.ValidTransaction) *Summary {
	s := &Summary{
		TransactionCount: len(txns),
		Regions:          make(map[string]RegionStat),
		Products:         make(map[string]ProductStat),
		Customers:        make(map[string]CustomerStat),
		Daily:            make(map[string]DayStat),
	}

	customerProducts := make(map[string]map[string]struct{})
	dayCustomers := make(map[string]map[string]struct{})

	for _, t := range txns {
		s.TotalRevenue += t.LineTotal

		if s.FirstDate.IsZero() || t.Date.Before(s.FirstDate) {
			s.FirstDate = t.Date
		}
		if s.LastDate.IsZero() || t.Date.After(s.LastDate) {
			s.LastDate = t.Date
		}

		region := s.Regions[t.Region]
		region.Region = t.Region
		region.TotalSales += t.LineTotal
		region.TransactionCount++
		s.Regions[t.Region] = region

		product := s.Products[t.ProductID]
		product.ProductID = t.ProductID
		product.ProductName = t.ProductName
		product.UnitsSold += t.Quantity
		product.Revenue += t.LineTotal
		product.OrderCount++
		s.Products[t.ProductID] = product

		customer := s.Customers[t.CustomerID]
		customer.CustomerID = t.CustomerID
		customer.TotalSpent += t.LineTotal
		customer.OrderCount++
		s.Customers[t.CustomerID] = customer
		if customerProducts[t.CustomerID] == nil {
			customerProducts[t.CustomerID] = make(map[string]struct{})
		}
		customerProducts[t.CustomerID][t.ProductName] = struct{}{}

		dateKey := t.DateString()
		day := s.Daily[dateKey]
		day.Date = t.Date
		day.Revenue += t.LineTotal
		day.TransactionCount++
		s.Daily[dateKey] = day
		if dayCustomers[dateKey] == nil {
			dayCustomers[dateKey] = make(map[string]struct{})
		}
		dayCustomers[dateKey][t.CustomerID] = struct{}{}
	}

	if s.TransactionCount > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TransactionCount)
	}

	for name, r := range s.Regions {
		if r.TransactionCount > 0 {
			r.Average = r.TotalSales / float64(r.TransactionCount)
		}
		if s.TotalRevenue > 0 {
			r.Percentage = r.TotalSales / s.TotalRevenue * 100
		}
		s.Regions[name] = r
	}

	for id, c := range s.Customers {
		if c.OrderCount > 0 {
			c.AvgOrderValue = c.TotalSpent / float64(c.OrderCount)
		}
		c.ProductsBought = sortedKeys(customerProducts[id])
		s.Customers[id] = c
	}

	for key, d := range s.Daily {
		d.UniqueCustomers = len(dayCustomers[key])
		s.Daily[key] = d
	}

	s.BestDay = bestDay(s.Daily)
	s.Underperforming = e.underperforming(s.Products)

	slog.Debug("Analytics complete",
		"transactions", s.TransactionCount,
		"total_revenue", s.TotalRevenue,
		"regions", len(s.Regions),
		"products", len(s.Products))

	return s
}

// bestDay picks the day with maximum revenue; ties go to the earliest date.
func bestDay(daily map[string]DayStat) *DayStat {
	var best *DayStat
	for _, d := range daily {
		d := d
		if best == nil ||
			d.Revenue > best.Revenue ||
			(d.Revenue == best.Revenue && d.Date.Before(best.Date)) {
			best = &d
		}
	}
	return best
}

// underperforming returns product IDs with revenue below the configured
// fraction of the mean per-product revenue, sorted ascending.
func (e *Engine) underperforming(products map[string]ProductStat) []string {
	if len(products) == 0 {
		return nil
	}

	var total float64
	for _, p := range products {
		total += p.Revenue
	}
	threshold := e.underperformFactor * total / float64(len(products))

	var ids []string
	for id, p := range products {
		if p.Revenue < threshold {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
