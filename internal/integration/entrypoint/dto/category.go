package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for adding a custom entry.
type CreateCategoryRequest struct {
	Kind string `json:"kind" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CatalogResponse is the merged catalog a client offers in its forms.
type CatalogResponse struct {
	Receivers         []string `json:"receivers"`
	Recipients        []string `json:"recipients"`
	ExpenseCategories []string `json:"expense_categories"`
	IncomeCategories  []string `json:"income_categories"`
	PaymentMethods    []string `json:"payment_methods"`
}

// CustomCategoriesResponse lists the user's own additions.
type CustomCategoriesResponse struct {
	Receivers  []string `json:"receivers"`
	Recipients []string `json:"recipients"`
	Expenses   []string `json:"expenses"`
	Income     []string `json:"income"`
}

// CategoriesResponse represents the response for listing categories.
type CategoriesResponse struct {
	Catalog CatalogResponse          `json:"catalog"`
	Custom  CustomCategoriesResponse `json:"custom"`
}

// CreateCategoryResponse represents the response for adding a custom entry.
type CreateCategoryResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
	CategoriesResponse
}

// ToCatalogResponse converts a domain Catalog.
func ToCatalogResponse(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		Receivers:         c.Receivers,
		Recipients:        c.Recipients,
		ExpenseCategories: c.ExpenseCategories,
		IncomeCategories:  c.IncomeCategories,
		PaymentMethods:    c.PaymentMethods,
	}
}

// ToCustomCategoriesResponse converts domain custom categories.
func ToCustomCategoriesResponse(c entity.CustomCategories) CustomCategoriesResponse {
	return CustomCategoriesResponse{
		Receivers:  c.Receivers,
		Recipients: c.Recipients,
		Expenses:   c.Expenses,
		Income:     c.Income,
	}
}

// ToCategoriesResponse converts the list use case output.
func ToCategoriesResponse(output *category.ListCategoriesOutput) CategoriesResponse {
	return CategoriesResponse{
		Catalog: ToCatalogResponse(output.Catalog),
		Custom:  ToCustomCategoriesResponse(output.Custom),
	}
}

// ToCreateCategoryResponse converts the create use case output.
func ToCreateCategoryResponse(output *category.CreateCategoryOutput) CreateCategoryResponse {
	return CreateCategoryResponse{
		Name:  output.Name,
		Added: output.Added,
		CategoriesResponse: CategoriesResponse{
			Catalog: ToCatalogResponse(output.Catalog),
			Custom:  ToCustomCategoriesResponse(output.Custom),
		},
	}
}
