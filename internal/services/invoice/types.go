package invoice

import "time"

const (
	StatusPaid = "paid"

	requestDateLayout = "2006-01-02 15:04:05"
	dateLayout        = "2006-01-02"

	// version codes are drawn from [0, versionCodeUpper).
	versionCodeUpper = 9_999_999_999
)

// CreateRequest carries raw parameters; nil means the parameter was absent.
type CreateRequest struct {
	TransactionNumber *string
	Amount            *string
}

type CreateResult struct {
	InvoiceID   string
	QRContent   string // base64 PNG
	QRReference string
	RequestDate string // local offset, "YYYY-MM-DD HH:MM:SS"
	ExpiredDate time.Time
	MerchantID  string
}

// VerifyRequest carries raw parameters; nil means the parameter was absent.
type VerifyRequest struct {
	InvoiceID *string
	Amount    *string
	Date      *string
}

type VerifyResult struct {
	Status         string
	CustomerName   string
	PaymentMethod  string
	APIVersionCode string
}

type PayRequest struct {
	Token         string
	CustomerName  string
	PaymentMethod string
}

type PayResult struct {
	InvoiceID     string
	Status        string
	CustomerName  string
	PaymentMethod string
}

type Config struct {
	// LocalOffset shifts UTC request dates into merchant local time.
	LocalOffset time.Duration
	// TerminalQR dumps each created QR to the debug log as block characters.
	TerminalQR  bool
}
