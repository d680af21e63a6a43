package form

import (
	"errors"
	"testing"

	"github.com/retailops/storectl/pkg/api"
)

func TestStockInDraft_Totals(t *testing.T) {
	draft := NewStockInDraft("NV01")
	draft.Supplier = "Cong Ty May Mac ABC"

	row := draft.AddLine()
	draft.SelectProduct(row, aoThun)
	draft.SetUnitPrice(row, d(60000)) // purchase price, not sale price
	draft.SetQuantity(row, 50)

	if !draft.Total.Equal(d(3000000)) {
		t.Fatalf("total = %s, want 3000000", draft.Total)
	}

	second := draft.AddLine()
	draft.SelectProduct(second, aoSoMi)
	draft.SetUnitPrice(second, d(90000))
	draft.SetQuantity(second, 10)

	if !draft.Total.Equal(d(3900000)) {
		t.Fatalf("total = %s, want 3900000", draft.Total)
	}
	if !draft.Total.Equal(sumLines(draft.Lines)) {
		t.Error("parent total diverged from line totals")
	}
}

func TestStockInDraft_Validate(t *testing.T) {
	newValid := func() StockInDraft {
		draft := NewStockInDraft("NV01")
		draft.Supplier = "ABC"
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)
		draft.SetUnitPrice(row, d(60000))
		return draft
	}

	t.Run("valid draft passes", func(t *testing.T) {
		draft := newValid()
		if err := draft.Validate(); err != nil {
			t.Errorf("Validate = %v", err)
		}
	})

	t.Run("supplier required", func(t *testing.T) {
		draft := newValid()
		draft.Supplier = ""
		if err := draft.Validate(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("zero purchase price rejected", func(t *testing.T) {
		draft := newValid()
		draft.SetUnitPrice(draft.Lines[0].RowID, d(0))
		if err := draft.Validate(); !errors.Is(err, ErrBadPrice) {
			t.Errorf("Validate = %v, want ErrBadPrice", err)
		}
	})

	t.Run("typed product rejected", func(t *testing.T) {
		draft := newValid()
		draft.TypeProductName(draft.Lines[0].RowID, "Ao Thun")
		if err := draft.Validate(); !errors.Is(err, ErrProductNotSelected) {
			t.Errorf("Validate = %v, want ErrProductNotSelected", err)
		}
	})
}

func TestStockInDraftFrom_RoundTrip(t *testing.T) {
	rec := api.StockIn{
		Code:         "NK5",
		EmployeeCode: "NV02",
		Supplier:     "ABC",
		ReceivedAt:   "2025-02-10",
		Lines: []api.StockInLine{
			{Code: "CT1", ProductCode: "P1", ProductName: "Ao Thun", Quantity: 20, UnitPrice: d(60000), LineTotal: d(1200000)},
		},
	}

	draft := StockInDraftFrom(rec)
	if !draft.Total.Equal(d(1200000)) {
		t.Errorf("total = %s, want 1200000", draft.Total)
	}
	if err := draft.Validate(); err != nil {
		t.Errorf("loaded record should validate: %v", err)
	}

	req := draft.Request()
	if req.Supplier != "ABC" || len(req.Lines) != 1 {
		t.Errorf("unexpected request: %+v", req)
	}
	if !req.Lines[0].UnitPrice.Equal(d(60000)) {
		t.Errorf("price lost in round trip: %s", req.Lines[0].UnitPrice)
	}
}

func TestProductDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductDraft)
		wantErr bool
	}{
		{"complete draft", func(*ProductDraft) {}, false},
		{"missing name", func(p *ProductDraft) { p.Name = "" }, true},
		{"missing category", func(p *ProductDraft) { p.Category = "" }, true},
		{"zero price", func(p *ProductDraft) { p.SalePrice = d(0) }, true},
		{"negative stock", func(p *ProductDraft) { p.Quantity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := ProductDraft{Name: "Ao Thun", Category: "Thoi Trang", SalePrice: d(100000), Quantity: 10}
			tt.mutate(&draft)
			if err := draft.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPasswordDraft_Validate(t *testing.T) {
	draft := PasswordDraft{AccountCode: "TK01", Old: "old", New: "new", Confirm: "new"}
	if err := draft.Validate(); err != nil {
		t.Errorf("Validate = %v", err)
	}

	draft.Confirm = "other"
	if err := draft.Validate(); err == nil {
		t.Error("mismatched confirmation must be rejected before any request")
	}
}
