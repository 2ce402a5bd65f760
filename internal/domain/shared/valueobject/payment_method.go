package valueobject

// PaymentMethod is how money was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodLinePay      PaymentMethod = "line_pay"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodOther        PaymentMethod = "other"
)

// PaymentMethods lists every accepted method
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodBankTransfer,
	PaymentMethodLinePay,
	PaymentMethodCheck,
	PaymentMethodOther,
}

// IsValid checks if the method is one of the accepted values
func (m PaymentMethod) IsValid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Label returns the display name printed on documents
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "現金"
	case PaymentMethodBankTransfer:
		return "銀行轉帳"
	case PaymentMethodLinePay:
		return "LINE Pay"
	case PaymentMethodCheck:
		return "支票"
	default:
		return "其他"
	}
}
