package export

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Currency is the ISO code every amount is printed in.
const Currency = money.GHS

const dateLayout = "2006-01-02"

// BlockKind identifies the content of a Block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockTable
)

// Table is a grid of already formatted cells.
type Table struct {
	Caption string
	Columns []string
	Rows    [][]string
	Footer  []string
}

// Block is one element of a Document.
type Block struct {
	Kind  BlockKind
	Text  string
	Table *Table
}

// Document is the renderer-neutral layout of a report.
type Document struct {
	Title    string
	Subtitle string
	Blocks   []Block
}

func (d *Document) heading(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockHeading, Text: text})
}

func (d *Document) paragraph(format string, args ...any) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockParagraph, Text: fmt.Sprintf(format, args...)})
}

func (d *Document) table(t Table) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockTable, Table: &t})
}

var formatter = func() *money.Formatter {
	c := money.GetCurrency(Currency)
	return money.NewFormatter(c.Fraction, c.Decimal, c.Thousand, Currency+" ", "$1")
}()

// FormatAmount prints amount as "GHS 1,234.50". Core PDF fonts have no cedi
// sign, so the ISO code is used everywhere.
func FormatAmount(amount decimal.Decimal) string {
	factor := decimal.New(1, int32(money.GetCurrency(Currency).Fraction))
	return formatter.Format(amount.Mul(factor).Round(0).IntPart())
}

// TransactionDocument lays out a TransactionReport.
func TransactionDocument(r TransactionReport) Document {
	doc := Document{
		Title:    "Transaction Report",
		Subtitle: "Generated on: " + r.GeneratedAt.Format(dateLayout),
	}

	doc.heading("Summary")
	doc.table(Table{
		Columns: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Received", FormatAmount(r.TotalReceived)},
			{"Total Sent", FormatAmount(r.TotalSent)},
			{"Net Balance", FormatAmount(r.NetBalance)},
		},
	})

	doc.heading("Money Received")
	for _, g := range r.Received {
		doc.table(personTable("Received from "+g.Person, g))
	}
	if len(r.OtherIncome.Transactions) > 0 {
		doc.table(personTable("Received from others", r.OtherIncome))
	}
	if len(r.Received) == 0 && len(r.OtherIncome.Transactions) == 0 {
		doc.paragraph("No money received.")
	}

	doc.heading("Money Sent")
	for _, g := range r.Sent {
		doc.table(personTable("Sent to "+g.Person, g))
	}
	if len(r.Sent) == 0 {
		doc.paragraph("No money sent to listed recipients.")
	}

	if len(r.OtherExpenses.Transactions) > 0 {
		doc.heading("Other Expenses")
		doc.table(personTable("", r.OtherExpenses))
	}

	if len(r.IncomeByCategory)+len(r.ExpenseByCategory) > 0 {
		doc.heading("By Category")
		rows := make([][]string, 0, len(r.IncomeByCategory)+len(r.ExpenseByCategory))
		for _, g := range append(append([]CategoryGroup{}, r.IncomeByCategory...), r.ExpenseByCategory...) {
			rows = append(rows, []string{string(g.Type), g.Category, strconv.Itoa(g.Count), FormatAmount(g.Total)})
		}
		doc.table(Table{Columns: []string{"Type", "Category", "Count", "Total"}, Rows: rows})
	}

	if len(r.FoodPurchases) > 0 {
		doc.heading("Food Items")
		for _, t := range r.FoodPurchases {
			doc.table(foodTable(t))
		}
	}

	return doc
}

// PeopleDocument lays out a PeopleReport.
func PeopleDocument(r PeopleReport) Document {
	doc := Document{
		Title:    r.Title,
		Subtitle: "Generated on: " + r.GeneratedAt.Format(dateLayout),
	}

	for _, g := range r.Received {
		doc.heading("Money from " + g.Person)
		peopleGroup(&doc, g)
		doc.paragraph("Total from %s: %s", g.Person, FormatAmount(g.Total))
	}
	for _, g := range r.Sent {
		doc.heading("Money to " + g.Person)
		peopleGroup(&doc, g)
		doc.paragraph("Total to %s: %s", g.Person, FormatAmount(g.Total))
	}
	if len(r.Received) == 0 && len(r.Sent) == 0 {
		doc.paragraph("No matching transactions.")
	}

	doc.heading("Summary")
	doc.paragraph("Total Received: %s", FormatAmount(r.TotalReceived))
	if r.IncludesSent {
		doc.paragraph("Total Sent: %s", FormatAmount(r.TotalSent))
		doc.paragraph("Net Balance: %s", FormatAmount(r.NetBalance))
	}

	return doc
}

func peopleGroup(doc *Document, g PersonGroup) {
	doc.table(personTable("", g))
	for _, t := range g.Transactions {
		if len(t.FoodItems) > 0 {
			doc.table(foodTable(t))
		}
	}
}

func personTable(caption string, g PersonGroup) Table {
	rows := make([][]string, 0, len(g.Transactions))
	for _, t := range g.Transactions {
		rows = append(rows, []string{t.Date.Format(dateLayout), FormatAmount(t.Amount), t.Category, t.Person, t.Description})
	}
	if caption != "" {
		caption = caption + " - Total: " + FormatAmount(g.Total)
	}
	return Table{
		Caption: caption,
		Columns: []string{"Date", "Amount", "Category", "Person", "Description"},
		Rows:    rows,
		Footer:  []string{"Total", FormatAmount(g.Total), "", "", ""},
	}
}

func foodTable(t entity.Transaction) Table {
	rows := make([][]string, 0, len(t.FoodItems))
	for _, item := range t.FoodItems {
		rows = append(rows, []string{item.Name, FormatAmount(item.Price), strconv.Itoa(item.Quantity), FormatAmount(item.Total())})
	}
	return Table{
		Caption: fmt.Sprintf("%s - %s", t.Date.Format(dateLayout), t.Person),
		Columns: []string{"Item", "Price", "Quantity", "Total"},
		Rows:    rows,
		Footer:  []string{"Total", "", "", FormatAmount(t.Amount)},
	}
}
