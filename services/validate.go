package services

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LineItemCategories are the allowed line item categories. "charger" covers
// EVSE hardware; everything a contractor bills that isn't hardware falls
// into materials/labor/permits/service.
var LineItemCategories = []string{"charger", "materials", "labor", "permits", "service", "other"}

// ClientInfo is the denormalized client snapshot stored on a quote. It is a
// copy taken at creation time, never a live reference to a customer record.
type ClientInfo struct {
	Name          string
	Company       string
	ContactPerson string
	Email         string
	Phone         string
}

func (c ClientInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, is.Email),
		validation.Field(&c.Name, validation.Length(0, 200)),
		validation.Field(&c.Company, validation.Length(0, 200)),
	)
}

// CreateQuoteInput carries everything needed to create a quote, whether
// blank, seeded from a project, or instantiated from a template.
type CreateQuoteInput struct {
	ProjectID  string
	TemplateID string

	Title  string
	Client ClientInfo

	TaxRate       float64
	DiscountType  DiscountType
	DiscountValue float64

	ValidUntil time.Time
	CreatedBy  string
	Notes      string
}

func (in CreateQuoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Client),
		validation.Field(&in.TaxRate, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&in.DiscountType, validation.In(DiscountPercent, DiscountFixed)),
		validation.Field(&in.DiscountValue, validation.Min(0.0)),
		validation.Field(&in.Title, validation.Length(0, 300)),
	)
}

// LineItemInput describes a new line item. When ProductID is set, blank
// description/uom and a zero unit price are snapshotted from the catalog
// record at add time.
type LineItemInput struct {
	Description     string
	Category        string
	Qty             float64
	UoM             string
	UnitPrice       float64
	DiscountPercent float64
	ProductID       string
}

func (in LineItemInput) Validate() error {
	descRules := []validation.Rule{validation.Length(0, 500)}
	if in.ProductID == "" {
		descRules = append(descRules, validation.Required)
	}
	return validation.ValidateStruct(&in,
		validation.Field(&in.Description, descRules...),
		validation.Field(&in.Category, validation.In(sliceToAny(LineItemCategories)...)),
		validation.Field(&in.Qty, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&in.UnitPrice, validation.Min(0.0)),
		validation.Field(&in.DiscountPercent, validation.Min(0.0), validation.Max(100.0)),
	)
}

// LineItemPatch updates an existing line item. Only non-nil fields are
// applied; the line total is always re-derived, never taken from the caller.
type LineItemPatch struct {
	Description     *string
	Category        *string
	Qty             *float64
	UoM             *string
	UnitPrice       *float64
	DiscountPercent *float64
}

func (p LineItemPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Description, validation.Length(1, 500)),
		validation.Field(&p.Category, validation.In(sliceToAny(LineItemCategories)...)),
		validation.Field(&p.Qty, validation.Min(0.0).Exclusive()),
		validation.Field(&p.UnitPrice, validation.Min(0.0)),
		validation.Field(&p.DiscountPercent, validation.Min(0.0), validation.Max(100.0)),
	)
}

// QuotePatch is an explicit, typed partial update for a quote. Totals and
// status are deliberately absent: totals are derived by the calculator and
// status changes go through TransitionQuote.
type QuotePatch struct {
	Title               *string
	ClientName          *string
	ClientCompany       *string
	ClientContactPerson *string
	ClientEmail         *string
	ClientPhone         *string

	TaxRate       *float64
	DiscountType  *DiscountType
	DiscountValue *float64

	ValidUntil *time.Time
	CreatedBy  *string
	Notes      *string
}

func (p QuotePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 300)),
		validation.Field(&p.ClientEmail, is.Email),
		validation.Field(&p.TaxRate, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&p.DiscountType, validation.In(DiscountPercent, DiscountFixed)),
		validation.Field(&p.DiscountValue, validation.Min(0.0)),
	)
}

func sliceToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
