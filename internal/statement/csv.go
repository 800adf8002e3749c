package statement

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flashcheeks/banking-api/internal/model"
)

// Statement files carry 8 positional comma-separated fields per line with
// no quoting. Debit and credit are separate columns; exactly one of the
// two is populated per row.
const (
	numFields  = 8
	colDate    = 0
	colType    = 1
	colDesc    = 4
	colDebit   = 5
	colCredit  = 6
	colBalance = 7
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Parse converts the raw text of one statement file into ordered
// transactions for account. Every line is treated as a data row; there
// is no header convention. A single malformed row fails the whole file
// with a ParseError carrying the row index.
func Parse(account, text string) ([]model.Transaction, error) {
	rows := lineBreaks.Split(strings.TrimSpace(text), -1)

	txns := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		txn, err := parseRow(account, i, row)
		if err != nil {
			return nil, &model.ParseError{Line: i, Err: err}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseRow(account string, order int, row string) (model.Transaction, error) {
	fields := strings.Split(row, ",")
	if len(fields) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	date, err := reformatDate(fields[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(fields[colDebit], fields[colCredit])
	if err != nil {
		return model.Transaction{}, err
	}

	balance, err := decimal.NewFromString(fields[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", fields[colBalance], err)
	}

	return model.Transaction{
		Account: account,
		Order:   order,
		Date:    date,
		Type:    fields[colType],
		Desc:    fields[colDesc],
		Amount:  amount,
		Balance: balance,
	}, nil
}

// parseAmount resolves the debit/credit column pair into a signed
// amount: debits are negated, credits kept as-is.
func parseAmount(debit, credit string) (decimal.Decimal, error) {
	if debit != "" {
		d, err := decimal.NewFromString(debit)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("parsing debit %q: %w", debit, err)
		}
		return d.Neg(), nil
	}
	c, err := decimal.NewFromString(credit)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing credit %q: %w", credit, err)
	}
	return c, nil
}

// reformatDate rewrites DD/MM/YYYY as YYYY-MM-DD. This is a string
// transform only; the calendar value is not validated.
func reformatDate(s string) (string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("expected DD/MM/YYYY date, got %q", s)
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}
