// Package analytics derives aggregate sales statistics from the valid
// transaction set.
package analytics

import (
	"sort"
	"time"
)

// RegionStat aggregates sales for one region.
type RegionStat struct {
	Region           string
	TotalSales       float64
	TransactionCount int
	Average          float64
	Percentage       float64
}

// ProductStat aggregates sales for one product.
type ProductStat struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	Revenue     float64
	OrderCount  int
}

// CustomerStat aggregates purchases for one customer.
type CustomerStat struct {
	CustomerID     string
	TotalSpent     float64
	OrderCount     int
	AvgOrderValue  float64
	ProductsBought []string
}

// DayStat aggregates sales for one calendar day.
type DayStat struct {
	Date             time.Time
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// Summary is the immutable result of one analytics run. Monetary values are
// accumulated at full precision; rounding happens only at presentation time.
type Summary struct {
	TotalRevenue      float64
	TransactionCount  int
	AverageOrderValue float64

	// FirstDate and LastDate bound the data; zero when the set is empty.
	FirstDate time.Time
	LastDate  time.Time

	Regions   map[string]RegionStat
	Products  map[string]ProductStat
	Customers map[string]CustomerStat
	Daily     map[string]DayStat

	// BestDay is the day with maximum revenue, ties broken by earliest
	// date; nil when the set is empty.
	BestDay *DayStat

	// Underperforming lists product IDs whose revenue falls below the
	// configured fraction of mean per-product revenue, sorted ascending.
	Underperforming []string
}

// RegionsBySales returns regions sorted by total sales descending, ties
// broken by region name ascending.
func (s *Summary) RegionsBySales() []RegionStat {
	regions := make([]RegionStat, 0, len(s.Regions))
	for _, r := range s.Regions {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].TotalSales != regions[j].TotalSales {
			return regions[i].TotalSales > regions[j].TotalSales
		}
		return regions[i].Region < regions[j].Region
	})
	return regions
}

// TopProducts returns up to n products ranked by revenue descending, ties
// broken by product ID ascending.
func (s *Summary) TopProducts(n int) []ProductStat {
	products := make([]ProductStat, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].ProductID < products[j].ProductID
	})
	if n > 0 && len(products) > n {
		products = products[:n]
	}
	return products
}

// TopCustomers returns up to n customers ranked by total spend descending,
// ties broken by customer ID ascending.
func (s *Summary) TopCustomers(n int) []CustomerStat {
	customers := make([]CustomerStat, 0, len(s.Customers))
	for _, c := range s.Customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].TotalSpent != customers[j].TotalSpent {
			return customers[i].TotalSpent > customers[j].TotalSpent
		}
		return customers[i].CustomerID < customers[j].CustomerID
	})
	if n > 0 && len(customers) > n {
		customers = customers[:n]
	}
	return customers
}

// Trend returns the daily aggregates in chronological order.
func (s *Summary) Trend() []DayStat {
	days := make([]DayStat, 0, len(s.Daily))
	for _, d := range s.Daily {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// LowQuantityProducts returns products whose total units sold fall below
// threshold, sorted by units ascending then product ID.
func (s *Summary) LowQuantityProducts(threshold int) []ProductStat {
	var low []ProductStat
	for _, p := range s.Products {
		if p.UnitsSold < threshold {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].UnitsSold != low[j].UnitsSold {
			return low[i].UnitsSold < low[j].UnitsSold
		}
		return low[i].ProductID < low[j].ProductID
	})
	return low
}
