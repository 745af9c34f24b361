// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ReportKind selects which report to build.
type ReportKind string

const (
	ReportTransactions  ReportKind = "transactions"
	ReportFood          ReportKind = "food_stuffs"
	ReportSpecialPeople ReportKind = "special_people"
)

// ReportRequest carries everything a report is built from.
type ReportRequest struct {
	Kind         ReportKind
	Format       string
	Transactions []entity.Transaction
	Catalog      entity.Catalog
	People       []string // counterparties for the food and special people reports
	GeneratedAt  time.Time
}

// ExportedFile is a rendered report ready for download.
type ExportedFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ReportExporter builds and renders reports.
type ReportExporter interface {
	Export(ctx context.Context, req ReportRequest) (*ExportedFile, error)
}
