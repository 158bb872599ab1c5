package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type InvoiceData struct {
	CompanyName   string
	InvoiceNumber string
	IssueDate     string

	CustomerName string
	VehicleModel string
	VehiclePlate string
	DriverName   string

	BookingDate  string
	RentalPeriod string
	Distance     string

	Items []InvoiceItem

	Total string
}

type InvoiceItem struct {
	Description string
	Amount      string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, data.CompanyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(10,
		text.NewCol(12, "Rental Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Invoice meta
	m.AddRow(16,
		col.New(6).Add(
			text.New("Invoice number: "+data.InvoiceNumber, props.Text{Top: 0}),
			text.New("Date of issue: "+data.IssueDate, props.Text{Top: 4}),
			text.New("Booking date: "+data.BookingDate, props.Text{Top: 8}),
			text.New("Rental period: "+data.RentalPeriod, props.Text{Top: 12}),
		),
		col.New(6).Add(
			text.New("Customer: "+data.CustomerName, props.Text{Top: 0}),
			text.New("Vehicle: "+data.VehicleModel+" ("+data.VehiclePlate+")", props.Text{Top: 4}),
			text.New("Chauffeur: "+data.DriverName, props.Text{Top: 8}),
			text.New("Distance: "+data.Distance, props.Text{Top: 12}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(9, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(9, item.Description, props.Text{Size: 9}),
			text.NewCol(3, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(6),
		text.NewCol(3, "Total payable", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
		text.NewCol(3, data.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
