package store

import (
	"fmt"
	"strconv"
	"strings"
)

const invoiceNumberPrefix = "INV-"

// FirstInvoiceNumber is assigned when no invoices exist yet.
const FirstInvoiceNumber = "INV-0001"

// NextInvoiceNumber increments the numeric suffix of the latest invoice
// number and zero-pads it to four digits. Numbers past 9999 keep growing
// without padding loss (%04d only pads, never truncates).
func NextInvoiceNumber(latest string) (string, error) {
	suffix := strings.TrimPrefix(latest, invoiceNumberPrefix)
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("malformed invoice number %q: %w", latest, err)
	}
	return fmt.Sprintf("%s%04d", invoiceNumberPrefix, n+1), nil
}
