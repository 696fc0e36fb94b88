package ui

import (
	"fmt"
	"io"
	"smartshop/domain"
	"smartshop/format"
	"smartshop/services"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// gaugeWidth is the number of cells of the budget bar.
const gaugeWidth = 30

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// PrintAdminDashboard draws the index statistics and the document list.
func (p *Printer) PrintAdminDashboard(dashboard services.AdminDashboard) {
	stats := dashboard.Stats
	p.printf("%s\n", p.paint(titleStyle, "📊 Index"))
	p.printf("  vectors %s · documents %d · products %d · %.2f MB",
		format.FormatNumber(float64(stats.TotalVectors)), stats.TotalDocuments,
		stats.TotalProductsExtracted, stats.TotalStorageMB)
	if stats.EmbeddingModel != "" {
		p.printf(" · %s (%d dims)", stats.EmbeddingModel, stats.Dimensions)
	}
	p.printf("\n\n")

	if len(dashboard.Documents) == 0 {
		p.printf("  %s\n", p.paint(mutedStyle, "no document"))
		return
	}
	table := newTable(p.out, []string{"ID", "File", "Vectors", "Chunks", "Products", "Uploaded"})
	for _, doc := range dashboard.Documents {
		table.Append([]string{
			doc.DocumentID,
			doc.Filename,
			strconv.Itoa(doc.VectorCount),
			strconv.Itoa(doc.ChunkCount),
			strconv.Itoa(doc.ExtractedProducts),
			uploadedAt(doc.UploadedAt),
		})
	}
	table.Render()
}

// uploadedAt trims the naive ISO timestamp of the backend to the minute.
func uploadedAt(raw string) string {
	raw = strings.Replace(raw, "T", " ", 1)
	if len(raw) > 16 {
		return raw[:16]
	}
	return raw
}

func (p *Printer) PrintUpload(doc domain.UploadedDocument) {
	p.Success(fmt.Sprintf("✅ %s uploaded!", doc.Filename))
	p.printf("  chunks %d · vectors %d", doc.Chunks, doc.VectorsUploaded)
	if doc.CatalogUpdated {
		p.printf(" · products %d extracted, %d added to the catalogue", doc.ExtractedProducts, doc.AddedToCatalog)
	}
	p.printf("\n")
}

func (p *Printer) PrintSearchHits(hits []domain.SearchHit) {
	if len(hits) == 0 {
		p.printf("  %s\n", p.paint(mutedStyle, "no result"))
		return
	}
	table := newTable(p.out, []string{"#", "Score", "File", "Chunk", "Type", "Product", "Text"})
	for i, hit := range hits {
		product := ""
		if hit.ProductName != nil {
			product = *hit.ProductName
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.1f%%", hit.Score*100),
			hit.Filename,
			strconv.Itoa(hit.ChunkIndex),
			hit.Type,
			product,
			excerpt(hit.Text, 60),
		})
	}
	table.Render()
}

func excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

// PrintModelDashboard draws the active model, the catalogue, the usage and the budget gauge.
func (p *Printer) PrintModelDashboard(dashboard services.ModelDashboard) {
	config := dashboard.Snapshot.Config
	p.printf("%s %s/%s", p.paint(titleStyle, "🤖 Active model:"), config.CurrentProvider, config.CurrentModel)
	if info := dashboard.Snapshot.CurrentModelInfo; info != nil {
		p.printf(" (%s, $%.2f / 1M tokens)", info.Name, info.CostPer1MTokens)
	}
	autoSwitch := "off"
	if config.AutoSwitchEnabled {
		autoSwitch = "on"
	}
	p.printf("\n  auto-switch %s · monthly budget $%.2f\n\n", autoSwitch, config.MonthlyBudget)

	table := newTable(p.out, []string{"", "Provider", "Model", "Name", "$ / 1M", "Speed", "Quality"})
	for _, provider := range dashboard.Models.Providers() {
		for _, id := range dashboard.Models.ModelIDs(provider) {
			info := dashboard.Models[provider][id]
			active := ""
			if provider == config.CurrentProvider && id == config.CurrentModel {
				active = "●"
			}
			table.Append([]string{active, provider, id, info.Name,
				fmt.Sprintf("%.2f", info.CostPer1MTokens), info.Speed, info.Quality})
		}
	}
	table.Render()
	p.printf("\n")

	p.PrintUsage(dashboard.Usage)
}

func (p *Printer) PrintUsage(usage domain.Usage) {
	stats := usage.Stats
	p.printf("%s tokens %s · cost $%.4f · requests %d\n", p.paint(titleStyle, "📈 Usage:"),
		format.FormatNumber(float64(stats.TotalTokens)), stats.TotalCost, stats.RequestsCount)
	if stats.LastReset != "" {
		p.printf("  since %s\n", uploadedAt(stats.LastReset))
	}

	p.printBuckets("Model", stats.ByModel)
	p.printBuckets("Date", stats.ByDate)
	p.printBudget(usage.Budget)
}

func (p *Printer) printBuckets(label string, buckets map[string]domain.UsageBucket) {
	if len(buckets) == 0 {
		return
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := newTable(p.out, []string{label, "Tokens", "Cost", "Requests"})
	for _, k := range keys {
		b := buckets[k]
		table.Append([]string{k, format.FormatNumber(float64(b.Tokens)),
			fmt.Sprintf("$%.4f", b.Cost), strconv.FormatInt(b.Requests, 10)})
	}
	table.Render()
}

func (p *Printer) printBudget(budget domain.Budget) {
	filled := int(budget.PercentUsed / 100 * gaugeWidth)
	filled = max(0, min(gaugeWidth, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
	line := fmt.Sprintf("💰 Budget %s %.1f%%  $%.2f / $%.2f (remaining $%.2f)",
		bar, budget.PercentUsed, budget.Used, budget.MonthlyLimit, budget.Remaining)

	switch budget.Level() {
	case domain.BudgetCritical:
		p.printf("%s\n", p.paint(errorStyle, line))
	case domain.BudgetWarning:
		p.Warning(line)
	default:
		p.printf("%s\n", p.paint(successStyle, line))
	}
}
