package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"hotel-frontdesk/models"
)

// ItemizedInvoice is a running-total bill held for the current front desk
// session. It is never persisted.
//
// The subtotal always equals the sum of the line item totals. The discount
// is recomputed from the subtotal on each ApplyDiscount call, so a later
// call replaces an earlier one rather than stacking.
type ItemizedInvoice struct {
	mu         sync.Mutex
	items      []models.LineItem
	subtotal   float64
	discount   float64
	amountPaid float64
}

func NewItemizedInvoice() *ItemizedInvoice {
	return &ItemizedInvoice{}
}

// AddItem appends a line item. Blank names, negative prices and
// non-positive quantities are rejected.
func (inv *ItemizedInvoice) AddItem(name string, price float64, quantity int) bool {
	if strings.TrimSpace(name) == "" || price < 0 || quantity <= 0 {
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	item := models.LineItem{Name: name, UnitPrice: price, Quantity: quantity}
	inv.items = append(inv.items, item)
	inv.subtotal += item.Total()
	return true
}

// ApplyDiscount sets the discount to percent of the current subtotal.
// Percentages outside [0, 100] are rejected.
func (inv *ItemizedInvoice) ApplyDiscount(percent float64) bool {
	if percent < 0 || percent > 100 {
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.discount = percent * inv.subtotal / 100
	return true
}

// ProcessPayment settles the invoice when amount covers the grand total.
// An insufficient amount reports the shortfall and records nothing.
func (inv *ItemizedInvoice) ProcessPayment(amount float64) models.PaymentResult {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	grand := toPaise(inv.subtotal - inv.discount)
	tendered := toPaise(amount)
	if tendered < grand {
		shortfall := float64(grand-tendered) / 100
		return models.PaymentResult{
			Tendered:  amount,
			Shortfall: shortfall,
			Message:   fmt.Sprintf("Need Rs %.2f more.", shortfall),
		}
	}

	inv.amountPaid = amount
	change := float64(tendered-grand) / 100
	return models.PaymentResult{
		Accepted: true,
		Tendered: amount,
		Change:   change,
		Message:  fmt.Sprintf("Paid! Change: Rs %.2f", change),
	}
}

func (inv *ItemizedInvoice) Reset() {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.items = nil
	inv.subtotal = 0
	inv.discount = 0
	inv.amountPaid = 0
}

func (inv *ItemizedInvoice) Totals() models.InvoiceTotals {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	items := make([]models.LineItem, len(inv.items))
	copy(items, inv.items)
	return models.InvoiceTotals{
		Items:      items,
		Subtotal:   inv.subtotal,
		Discount:   inv.discount,
		GrandTotal: inv.subtotal - inv.discount,
		AmountPaid: inv.amountPaid,
	}
}

// Summary renders the invoice as printable text.
func (inv *ItemizedInvoice) Summary() string {
	t := inv.Totals()

	var sb strings.Builder
	sb.WriteString("=== BILL ===\n")
	for _, item := range t.Items {
		fmt.Fprintf(&sb, "%s: Rs %s x %d = Rs %s\n",
			item.Name, formatAmount(item.UnitPrice), item.Quantity, formatAmount(item.Total()))
	}
	fmt.Fprintf(&sb, "Subtotal: Rs %s\n", formatAmount(t.Subtotal))
	fmt.Fprintf(&sb, "Discount: Rs %s\n", formatAmount(t.Discount))
	fmt.Fprintf(&sb, "Grand Total: Rs %s\n", formatAmount(t.GrandTotal))
	return sb.String()
}

// toPaise rounds an amount to whole paise so payments compare exactly.
func toPaise(v float64) int64 {
	return int64(math.Round(v * 100))
}

// formatAmount prints the shortest exact form: 1000 -> "1000", 12.5 -> "12.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
