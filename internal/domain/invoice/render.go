package invoice

import (
	"fmt"
	"strings"

	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Copy selects which physical copy of an invoice is rendered
type Copy string

const (
	CopyStub       Copy = "stub"
	CopyReceipt    Copy = "receipt"
	CopyAccounting Copy = "accounting"
)

// IsValid checks if the copy is known
func (c Copy) IsValid() bool {
	return c == CopyStub || c == CopyReceipt || c == CopyAccounting
}

// Label returns the printed copy name
func (c Copy) Label() string {
	switch c {
	case CopyStub:
		return "存根聯"
	case CopyReceipt:
		return "收執聯"
	default:
		return "記帳聯"
	}
}

// Signatory rows printed at the foot of a copy
const (
	SignatoryHandler       = "經手人"
	SignatoryPayee         = "收款人"
	SignatoryAccountant    = "會計"
	SignatoryChiefAccounts = "主辦會計"
)

// Line is one label/value row of a rendered document
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Rendered is a print-ready view of one copy of an invoice
type Rendered struct {
	Title         string   `json:"title"`
	CopyLabel     string   `json:"copy_label"`
	InvoiceNumber string   `json:"invoice_number"`
	IssueDate     string   `json:"issue_date"`
	Lines         []Line   `json:"lines"`
	Signatories   []string `json:"signatories"`
}

var twPrinter = message.NewPrinter(language.MustParse("zh-TW"))

// FormatAmount renders a whole-dollar amount as NT$12,345
func FormatAmount(amount int64) string {
	return twPrinter.Sprintf("NT$%d", amount)
}

// Render lays out one copy of an invoice. It has no side effects.
// Receipts never carry a buyer tax ID or accountant signatures.
func Render(inv *Invoice, c Copy) (Rendered, error) {
	if !c.IsValid() {
		return Rendered{}, fmt.Errorf("unknown copy %q", c)
	}
	r := Rendered{
		Title:         inv.Type.Title(),
		CopyLabel:     c.Label(),
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     valueobject.FormatDate(inv.IssuedAt),
	}

	r.Lines = append(r.Lines, Line{Label: "買受人", Value: inv.BuyerName})
	if inv.Type == TypeInvoice3 && inv.BuyerTaxID != "" {
		r.Lines = append(r.Lines, Line{Label: "統一編號", Value: inv.BuyerTaxID})
	}
	r.Lines = append(r.Lines, Line{
		Label: "品名",
		Value: fmt.Sprintf("%04d年%02d月租金", inv.Year, inv.Month),
	})
	if inv.Type == TypeInvoice3 {
		r.Lines = append(r.Lines,
			Line{Label: "銷售額", Value: FormatAmount(inv.SalesAmount())},
			Line{Label: "營業稅", Value: FormatAmount(inv.TaxAmount)},
		)
	}
	r.Lines = append(r.Lines,
		Line{Label: "總計", Value: FormatAmount(inv.Amount)},
		Line{Label: "總計新臺幣（大寫）", Value: ChineseUppercase(inv.Amount)},
	)
	if inv.PaymentMethod != "" {
		r.Lines = append(r.Lines, Line{Label: "付款方式", Value: inv.PaymentMethod.Label()})
	}
	if inv.Status == StatusVoid {
		r.Lines = append(r.Lines, Line{Label: "作廢", Value: inv.VoidReason})
	}

	r.Signatories = signatories(inv.Type, c)
	return r, nil
}

func signatories(t Type, c Copy) []string {
	if t == TypeReceipt {
		return []string{SignatoryHandler, SignatoryPayee}
	}
	switch c {
	case CopyStub:
		return []string{SignatoryHandler, SignatoryAccountant}
	case CopyAccounting:
		return []string{SignatoryHandler, SignatoryAccountant, SignatoryChiefAccounts}
	default:
		return []string{SignatoryHandler}
	}
}

var (
	upperDigits   = []string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"}
	groupUnits    = []string{"仟", "佰", "拾", ""}
	sectionUnits  = []string{"", "萬", "億", "兆", "京"}
	uppercaseZero = upperDigits[0]
)

// ChineseUppercase spells a non-negative amount in financial numerals,
// e.g. 10005 becomes 壹萬零伍元整.
func ChineseUppercase(amount int64) string {
	if amount <= 0 {
		return uppercaseZero + "元整"
	}
	var groups []int
	for n := amount; n > 0; n /= 10000 {
		groups = append(groups, int(n%10000))
	}

	var b strings.Builder
	pendingZero := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			if b.Len() > 0 {
				pendingZero = true
			}
			continue
		}
		if b.Len() > 0 && (pendingZero || g < 1000) {
			b.WriteString(uppercaseZero)
		}
		pendingZero = false
		b.WriteString(spellGroup(g))
		b.WriteString(sectionUnits[i])
	}
	b.WriteString("元整")
	return b.String()
}

func spellGroup(g int) string {
	digits := [4]int{g / 1000, g / 100 % 10, g / 10 % 10, g % 10}
	var b strings.Builder
	started, zero := false, false
	for i, d := range digits {
		if d == 0 {
			if started {
				zero = true
			}
			continue
		}
		if zero {
			b.WriteString(uppercaseZero)
			zero = false
		}
		b.WriteString(upperDigits[d])
		b.WriteString(groupUnits[i])
		started = true
	}
	return b.String()
}
