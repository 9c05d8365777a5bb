package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	paymentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/payment"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/store"
)

var ErrContactNotFound = internal.NewNotFoundError("contact not found", internal.ErrCodeRecordNotFound)

type ContactRepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*paymentDatamodel.Contact, error)
	Insert(ctx context.Context, record *paymentDatamodel.Contact) error
}

type TransactionRepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*paymentDatamodel.Transaction, error)
	Insert(ctx context.Context, record *paymentDatamodel.Transaction) error
}

type ProfileProvider interface {
	GetProfile(ctx context.Context, ownerID string) (*profile.Profile, bool)
}

type Service struct {
	contacts     ContactRepositoryAPI
	transactions TransactionRepositoryAPI
	snapshots    *store.Snapshots
	profiles     ProfileProvider
	events       events.Publisher
	logger       *slog.Logger
	Now          func() time.Time
}

func NewService(contacts ContactRepositoryAPI, transactions TransactionRepositoryAPI, snapshots *store.Snapshots, profiles ProfileProvider, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		contacts:     contacts,
		transactions: transactions,
		snapshots:    snapshots,
		profiles:     profiles,
		events:       publisher,
		logger:       logger,
		Now:          aggregate.Now,
	}
}

func (s *Service) listContacts(ctx context.Context, ownerID string) ([]*Contact, bool) {
	rows, stale := store.Read[paymentDatamodel.Contact](ctx, s.snapshots, store.Contacts, ownerID, s.contacts)
	contacts := make([]*Contact, len(rows))
	for i, row := range rows {
		contacts[i] = ContactFromDataModel(row)
	}
	return contacts, stale
}

func (s *Service) listTransactions(ctx context.Context, ownerID string) ([]*Transaction, bool) {
	rows, stale := store.Read[paymentDatamodel.Transaction](ctx, s.snapshots, store.Transactions, ownerID, s.transactions)
	txs := make([]*Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := TransactionFromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable transaction", "transaction_id", row.ID, "error", err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, stale
}

func (s *Service) openingBalance(ctx context.Context, ownerID string) (decimal.Decimal, bool) {
	p, stale := s.profiles.GetProfile(ctx, ownerID)
	if p == nil {
		return decimal.Zero, true
	}
	return p.TotalSavings, stale
}

func (s *Service) GetPayments(ctx context.Context, ownerID, search string) *PaymentsView {
	opening, profileStale := s.openingBalance(ctx, ownerID)
	contacts, contactsStale := s.listContacts(ctx, ownerID)
	txs, txStale := s.listTransactions(ctx, ownerID)

	view := BuildPaymentsView(opening, contacts, txs, search)
	view.Stale = profileStale || contactsStale || txStale
	return &view
}

func (s *Service) CreateContact(ctx context.Context, ownerID string, dto CreateContactDTO) (*Contact, error) {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("phone", dto.Phone).MaxLength(20)
	v.Field("upi_id", dto.UpiID).MaxLength(100)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	contact := &Contact{
		OwnerID:    ownerID,
		Name:       dto.Name,
		Phone:      dto.Phone,
		UpiID:      dto.UpiID,
		IsFrequent: dto.IsFrequent,
	}

	row := ContactToDataModel(contact)
	if err := s.contacts.Insert(ctx, row); err != nil {
		s.logger.Error("failed to create contact", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	contact.ID = row.ID
	contact.CreatedAt = row.CreatedAt

	s.logger.Info("contact created", "contact_id", contact.ID)
	return contact, nil
}

// SendMoney records a completed outgoing transfer to one of the owner's
// contacts. The balance check needs fresh data, so a stale read refuses the
// transfer instead of guessing.
func (s *Service) SendMoney(ctx context.Context, ownerID string, dto SendMoneyDTO) (*TransactionLine, error) {
	v := validation.NewValidator()
	v.Field("contact_id", dto.ContactID).Required()
	v.Field("amount", dto.Amount).Positive()
	v.Field("description", dto.Description).MaxLength(200)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	contacts, contactsStale := s.listContacts(ctx, ownerID)
	var contact *Contact
	for _, c := range contacts {
		if c.ID == dto.ContactID {
			contact = c
			break
		}
	}
	if contact == nil {
		if contactsStale {
			return nil, internal.NewStoreReadError(nil)
		}
		return nil, ErrContactNotFound
	}

	opening, profileStale := s.openingBalance(ctx, ownerID)
	txs, txStale := s.listTransactions(ctx, ownerID)
	if profileStale || txStale {
		return nil, internal.NewStoreReadError(nil)
	}
	if balance := WalletBalance(opening, txs); dto.Amount.GreaterThan(balance) {
		return nil, internal.NewValidationFieldError("amount", "amount exceeds wallet balance", internal.ErrCodeInsufficientFunds)
	}

	now := s.Now()
	tx := &Transaction{
		OwnerID:     ownerID,
		ContactID:   contact.ID,
		Type:        TypeSent,
		Amount:      dto.Amount,
		Description: dto.Description,
		Date:        now,
		Status:      StatusCompleted,
	}

	row := TransactionToDataModel(tx)
	if err := s.transactions.Insert(ctx, row); err != nil {
		s.logger.Error("failed to record transfer", "owner_id", ownerID, "contact_id", contact.ID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	tx.ID = row.ID
	tx.CreatedAt = row.CreatedAt

	s.logger.Info("money sent", "transaction_id", tx.ID, "contact_id", contact.ID, "amount", tx.Amount.String())
	if err := s.events.Publish(ctx, events.NewPaymentSentEvent(tx.ID, ownerID, contact.ID, tx.Amount)); err != nil {
		s.logger.Warn("failed to publish payment event", "transaction_id", tx.ID, "error", err)
	}

	return &TransactionLine{Transaction: tx, ContactName: contact.Name}, nil
}
