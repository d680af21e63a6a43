package form

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

var (
	aoThun = api.Product{Code: "P1", Name: "Ao Thun", SalePrice: d(100000)}
	aoSoMi = api.Product{Code: "P2", Name: "Ao So Mi", SalePrice: d(150000)}
)

func TestOrderDraft_SelectProduct(t *testing.T) {
	draft := NewOrderDraft("NV01")
	row := draft.AddLine()

	draft.SelectProduct(row, aoThun)

	line := findLine(draft.Lines, row)
	if line.ProductCode != "P1" {
		t.Errorf("code = %q, want P1", line.ProductCode)
	}
	if !line.UnitPrice.Equal(d(100000)) {
		t.Errorf("unit price = %s, want 100000", line.UnitPrice)
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
	if !line.Selected() {
		t.Error("row should count as selected")
	}
}

func TestOrderDraft_RunningTotal(t *testing.T) {
	// Two lines, 2 x 100000 and 1 x 1000000; the total must read 1200000
	// the moment the second line lands, with no server round-trip.
	draft := NewOrderDraft("NV01")

	first := draft.AddLine()
	draft.SelectProduct(first, aoThun)
	draft.SetQuantity(first, 2)

	second := draft.AddLine()
	draft.SelectProduct(second, api.Product{Code: "P9", Name: "Dong Ho", SalePrice: d(1000000)})

	if !draft.Total.Equal(d(1200000)) {
		t.Fatalf("total = %s, want 1200000", draft.Total)
	}
}

func TestOrderDraft_TotalInvariant(t *testing.T) {
	draft := NewOrderDraft("NV01")
	r1 := draft.AddLine()
	draft.SelectProduct(r1, aoThun)
	r2 := draft.AddLine()
	draft.SelectProduct(r2, aoSoMi)

	checkInvariant := func(when string) {
		t.Helper()
		if !draft.Total.Equal(sumLines(draft.Lines)) {
			t.Errorf("%s: total %s != sum of line totals %s", when, draft.Total, sumLines(draft.Lines))
		}
		for _, l := range draft.Lines {
			want := l.UnitPrice.Mul(d(int64(l.Quantity)))
			if !l.LineTotal.Equal(want) {
				t.Errorf("%s: line %s total %s != %s", when, l.RowID, l.LineTotal, want)
			}
		}
	}

	draft.SetQuantity(r1, 7)
	checkInvariant("after quantity edit")

	draft.SelectProduct(r2, aoThun)
	checkInvariant("after reselecting a product")

	draft.RemoveLine(r1)
	checkInvariant("after removing a line")

	if !draft.Total.Equal(d(100000)) {
		t.Errorf("total after removal = %s, want 100000", draft.Total)
	}
}

func TestOrderDraft_Validate(t *testing.T) {
	t.Run("typed but unselected product is rejected", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		draft.CustomerCode = "KH01"
		row := draft.AddLine()
		draft.TypeProductName(row, "Ao Thun")

		if err := draft.Validate(); !errors.Is(err, ErrProductNotSelected) {
			t.Errorf("Validate = %v, want ErrProductNotSelected", err)
		}
	})

	t.Run("typing after selecting clears the selection", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)
		draft.TypeProductName(row, "Ao Thun Den")

		line := findLine(draft.Lines, row)
		if line.Selected() || line.ProductCode != "" {
			t.Error("stale selection survived a keystroke")
		}
		if !line.UnitPrice.IsZero() {
			t.Errorf("stale price survived: %s", line.UnitPrice)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		draft.CustomerCode = "KH01"
		if err := draft.Validate(); !errors.Is(err, ErrNoLines) {
			t.Errorf("Validate = %v, want ErrNoLines", err)
		}
	})

	t.Run("needs a customer, existing or new", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)
		if err := draft.Validate(); err == nil {
			t.Error("expected error without any customer")
		}

		draft.CustomerName = "Nguyen Van Moi"
		if err := draft.Validate(); err != nil {
			t.Errorf("new-customer draft should validate: %v", err)
		}
	})
}

func TestOrderDraft_CreateRequest(t *testing.T) {
	t.Run("existing customer omits new-customer fields", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		draft.CustomerCode = "KH07"
		draft.CustomerName = "ignored"
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)
		draft.SetQuantity(row, 3)

		req := draft.CreateRequest()
		if req.CustomerCode != "KH07" || req.CustomerName != "" {
			t.Errorf("unexpected customer fields: %+v", req)
		}
		if len(req.Lines) != 1 || req.Lines[0].ProductCode != "P1" || req.Lines[0].Quantity != 3 {
			t.Errorf("unexpected lines: %+v", req.Lines)
		}
	})

	t.Run("new customer carries contact fields", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		draft.CustomerName = "Nguyen Van Moi"
		draft.Phone = "0900000000"
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)

		req := draft.CreateRequest()
		if req.CustomerCode != "" || req.CustomerName != "Nguyen Van Moi" || req.Phone != "0900000000" {
			t.Errorf("unexpected customer fields: %+v", req)
		}
	})

	t.Run("building the request leaves the draft intact", func(t *testing.T) {
		draft := NewOrderDraft("NV01")
		draft.CustomerCode = "KH07"
		row := draft.AddLine()
		draft.SelectProduct(row, aoThun)
		before := draft.Total

		_ = draft.CreateRequest()

		if !draft.Total.Equal(before) || len(draft.Lines) != 1 {
			t.Error("draft mutated by request shaping")
		}
	})
}

func TestOrderDraftFrom(t *testing.T) {
	order := api.Order{Code: "DH1", CustomerCode: "KH01", EmployeeCode: "NV01"}
	lines := []api.OrderLine{
		{Code: "1", ProductCode: "201", Quantity: 2, UnitPrice: d(250000), LineTotal: d(500000)},
		{Code: "2", ProductCode: "202", Quantity: 1, UnitPrice: d(1000000), LineTotal: d(1000000)},
	}

	draft := OrderDraftFrom(order, lines)

	if draft.OrderCode != "DH1" {
		t.Errorf("order code = %q", draft.OrderCode)
	}
	if !draft.Total.Equal(d(1500000)) {
		t.Errorf("total = %s, want 1500000", draft.Total)
	}
	if err := draft.Validate(); err != nil {
		t.Errorf("server-loaded lines should validate: %v", err)
	}

	req := draft.UpdateRequest()
	if req.Code != "DH1" || len(req.Lines) != 2 {
		t.Errorf("unexpected update request: %+v", req)
	}
}
