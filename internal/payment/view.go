package payment

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

const unknownContact = "Unknown"

func completed(t TransactionType) func(*Transaction) bool {
	return func(tx *Transaction) bool { return tx.Type == t && tx.Status == StatusCompleted }
}

// WalletBalance is the opening balance plus completed money received minus
// completed money sent. Pending and failed transfers do not move it.
func WalletBalance(opening decimal.Decimal, txs []*Transaction) decimal.Decimal {
	received := aggregate.SumAmount(aggregate.Where(txs, completed(TypeReceived)), AmountOf)
	sent := aggregate.SumAmount(aggregate.Where(txs, completed(TypeSent)), AmountOf)
	return opening.Add(received).Sub(sent)
}

func BuildPaymentsView(opening decimal.Decimal, contacts []*Contact, txs []*Transaction, search string) PaymentsView {
	names := make(map[string]string, len(contacts))
	for _, c := range contacts {
		names[c.ID] = c.Name
	}

	sorted := aggregate.SortByDate(txs, func(t *Transaction) int64 { return t.Date.Unix() }, true)
	history := make([]TransactionLine, 0, len(sorted))
	for _, t := range sorted {
		name, ok := names[t.ContactID]
		if !ok {
			name = unknownContact
		}
		history = append(history, TransactionLine{Transaction: t, ContactName: name})
	}

	return PaymentsView{
		WalletBalance:    WalletBalance(opening, txs),
		Search:           search,
		Contacts:         aggregate.Where(contacts, func(c *Contact) bool { return c.Matches(search) }),
		FrequentContacts: aggregate.Where(contacts, func(c *Contact) bool { return c.IsFrequent }),
		History:          history,
	}
}
