package checkout

import "errors"

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethod is an accepted way to pay. Details are shown to the
// customer as-is; nothing is verified against a payment backend.
type PaymentMethod struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

const (
	CashOnDelivery = "Cash on Delivery"
	BankTransfer   = "Bank Transfer"
	JazzCash       = "Jazz Cash"
	EasyPaisa      = "EasyPaisa"
)

// DefaultPaymentMethod is pre-selected when checkout starts
const DefaultPaymentMethod = CashOnDelivery

var paymentMethods = []PaymentMethod{
	{Name: CashOnDelivery, Details: "Pay with cash when your order is delivered."},
	{Name: BankTransfer, Details: "Bank: MCB Bank\nAccount Title: SialkotShop\nIBAN: PK12 MCBL 1234 5678 9012 3456"},
	{Name: JazzCash, Details: "Account Title: Arslan Ali\nAccount Number: 03079490721"},
	{Name: EasyPaisa, Details: "Account Title: Arslan Ali\nAccount Number: 03079490721"},
}

// PaymentMethods returns the accepted payment methods in display order
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// LookupPaymentMethod finds a payment method by name
func LookupPaymentMethod(name string) (PaymentMethod, error) {
	for _, m := range paymentMethods {
		if m.Name == name {
			return m, nil
		}
	}
	return PaymentMethod{}, ErrUnknownPaymentMethod
}
