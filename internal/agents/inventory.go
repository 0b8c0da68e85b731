package agents

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

const auditConcurrency = 4

// InventoryAgent reports on stock levels.
type InventoryAgent struct {
	base
	stock stockLookup
}

func (a *InventoryAgent) CheckStock(ctx context.Context, sku string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithSKU(ctx, sku))
	a.logg.Info(ctx, "agent.inventory.check_stock")

	report, err := a.stock.LookupStock(ctx, sku)
	if err != nil {
		return nil, err
	}

	analysis := a.analyze(ctx, "Analyze this inventory data and provide a brief assessment:\n"+encode(report))

	var b strings.Builder
	fmt.Fprintf(&b, "Inventory Check for %s\n\n", report.SKU)
	if analysis != "" {
		b.WriteString(analysis)
		b.WriteString("\n\n")
	}
	b.WriteString(stockLine(report))

	return &Reply{Agent: a.name, Text: b.String(), Analysis: analysis, Data: report}, nil
}

// AuditEntry is one SKU of an audit. Error is set when the SKU is unknown.
type AuditEntry struct {
	SKU    string                 `json:"sku"`
	Report *inventory.StockReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type AuditResult struct {
	Entries  []AuditEntry `json:"entries"`
	Critical []string     `json:"critical"`
	Warning  []string     `json:"warning"`
}

// Audit looks up every SKU concurrently and reports them in the order given.
// Unknown SKUs are recorded on their entry; any other failure aborts the audit.
func (a *InventoryAgent) Audit(ctx context.Context, skus []string) (*Reply, error) {
	if len(skus) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one sku is required")
	}
	ctx = a.withAgent(a.logg.WithField(ctx, "sku_count", len(skus)))
	a.logg.Info(ctx, "agent.inventory.audit")

	entries := make([]AuditEntry, len(skus))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)
	for i, sku := range skus {
		g.Go(func() error {
			entries[i].SKU = sku
			report, err := a.stock.LookupStock(gctx, sku)
			switch {
			case err == nil:
				entries[i].Report = report
			case pkgerrors.IsCode(err, pkgerrors.CodeNotFound), pkgerrors.IsCode(err, pkgerrors.CodeValidation):
				entries[i].Error = pkgerrors.As(err).Message()
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := AuditResult{Entries: entries, Critical: []string{}, Warning: []string{}}
	for _, entry := range entries {
		if entry.Report == nil {
			continue
		}
		switch entry.Report.Status {
		case enums.StockStatusOutOfStock:
			result.Critical = append(result.Critical, entry.SKU)
		case enums.StockStatusLowStock:
			result.Warning = append(result.Warning, entry.SKU)
		}
	}

	analysis := a.analyze(ctx, "Review this inventory audit and identify critical issues:\n"+encode(result))

	return &Reply{Agent: a.name, Text: renderAudit(result, analysis), Analysis: analysis, Data: result}, nil
}

func renderAudit(result AuditResult, analysis string) string {
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(banner("INVENTORY AUDIT REPORT", 60))
	b.WriteByte('\n')
	for _, entry := range result.Entries {
		if entry.Report == nil {
			fmt.Fprintf(&b, "%s: %s\n", entry.SKU, entry.Error)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", entry.SKU, stockLine(entry.Report))
	}
	b.WriteString(rule)
	b.WriteString("\n\nSUMMARY:\n")
	fmt.Fprintf(&b, "- Total products audited: %d\n", len(result.Entries))
	fmt.Fprintf(&b, "- Critical (Out of Stock): %d\n", len(result.Critical))
	fmt.Fprintf(&b, "- Warning (Low Stock): %d", len(result.Warning))

	if len(result.Critical) > 0 {
		fmt.Fprintf(&b, "\n\nCRITICAL: %s - Immediate action required", strings.Join(result.Critical, ", "))
	}
	if len(result.Warning) > 0 {
		fmt.Fprintf(&b, "\nWARNING: %s - Restock soon", strings.Join(result.Warning, ", "))
	}
	if analysis != "" {
		b.WriteString("\n\nANALYSIS:\n")
		b.WriteString(analysis)
	}
	return b.String()
}

func stockLine(r *inventory.StockReport) string {
	return fmt.Sprintf("%s - %d units (%s), %s, %s", r.ProductName, r.StockQuantity, r.StatusLabel, money(r.Price), r.WarehouseLocation)
}
