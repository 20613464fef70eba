package services

import (
	"fmt"
	"io"
	"strings"

	"ecommerce-dashboard/models"
)

// Print writes a terminal summary of a view.
func (s *DashboardService) Print(w io.Writer, v *models.DashboardView) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 E-COMMERCE DASHBOARD %s → %s\033[0m\n",
		v.Range.Start.Format("2006-01-02"), v.Range.End.Format("2006-01-02"))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Orders (monthly trend) : \033[1m%d\033[0m\n", v.Totals.TrendOrders)
	fmt.Fprintf(w, "  Revenue (monthly trend): \033[1;32m%.2f\033[0m\n", v.Totals.TrendRevenue)
	fmt.Fprintf(w, "  Payment rows           : \033[1m%d\033[0m\n", v.Totals.PaymentRows)
	fmt.Fprintf(w, "  Unique customers       : \033[1m%d\033[0m\n", v.Totals.UniqueCustomers)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Orders by State\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(v.Regions) == 0 {
		fmt.Fprintf(w, "  No data\n")
	} else {
		shares := Share(v.Regions)
		for i, r := range v.Regions {
			bar := strings.Repeat("█", int(shares[i]/2))
			fmt.Fprintf(w, "  %-8s %-50s %5.1f%% (%d)\n", r.State, bar, shares[i], r.TotalOrders)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Top Customers by Monetary\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(v.Ranking.ByMonetary) == 0 {
		fmt.Fprintf(w, "  No data\n")
	} else {
		for i, r := range v.Ranking.ByMonetary {
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %-34s \033[1;32m%10.2f\033[0m  freq %d  recency %dd\n",
				i+1, truncate(r.CustomerUniqueID, 32), r.Monetary, r.Frequency, r.Recency)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Highest Value Customer Groups\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(v.Segments) == 0 {
		fmt.Fprintf(w, "  No data\n")
	} else {
		for _, sg := range v.Segments {
			fmt.Fprintf(w, "  %-12s orders %-6d customers %-6d mean %.2f\n",
				sg.PaymentType, sg.TotalOrders, sg.UniqueCustomers, sg.MeanPayment)
			fmt.Fprintf(w, "  %12s states %s\n", "", sg.TopStates)
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
