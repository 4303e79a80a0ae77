package savings

import (
	"context"
	"errors"
	"testing"

	domain "koperasi-backend/internal/domain/savings"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const memberID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

type balanceRepoStub struct {
	balance *domain.Balance
	saved   *domain.Balance
}

func (s *balanceRepoStub) Create(ctx context.Context, b *domain.Balance) error { return nil }
func (s *balanceRepoStub) GetByMemberID(ctx context.Context, id string) (*domain.Balance, error) {
	return s.GetByMemberIDForUpdate(ctx, id)
}
func (s *balanceRepoStub) GetByMemberIDForUpdate(ctx context.Context, id string) (*domain.Balance, error) {
	if s.balance == nil || s.balance.MemberID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.balance, nil
}
func (s *balanceRepoStub) List(ctx context.Context) ([]domain.Balance, error) {
	if s.balance == nil {
		return nil, nil
	}
	return []domain.Balance{*s.balance}, nil
}
func (s *balanceRepoStub) Save(ctx context.Context, b *domain.Balance) error {
	s.saved = b
	return nil
}

type txnRepoStub struct {
	created []domain.Transaction
	fail    error
}

func (s *txnRepoStub) Create(ctx context.Context, t *domain.Transaction) error {
	if s.fail != nil {
		return s.fail
	}
	s.created = append(s.created, *t)
	return nil
}
func (s *txnRepoStub) List(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for i := len(s.created) - 1; i >= 0; i-- {
		if memberID == "" || s.created[i].MemberID == memberID {
			out = append(out, s.created[i])
		}
	}
	return out, nil
}

func newUsecase(balances *balanceRepoStub, txns *txnRepoStub) *Usecase {
	repos := uow.Repos{Balances: balances, SavingsTxns: txns}
	return NewUsecase(balances, txns, uowmock.Passthrough(repos))
}

func TestDeposit_WajibUpdatesBalanceAndTotal(t *testing.T) {
	balances := &balanceRepoStub{balance: &domain.Balance{MemberID: memberID, Pokok: 50_000, Wajib: 100_000, Total: 150_000}}
	txns := &txnRepoStub{}
	uc := newUsecase(balances, txns)

	dto, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "wajib", Amount: 25_000})
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if len(dto.TransactionID) != 32 {
		t.Fatalf("transaction id length = %d", len(dto.TransactionID))
	}
	if balances.saved == nil {
		t.Fatal("balance was not saved")
	}
	if balances.saved.Wajib != 125_000 || balances.saved.Pokok != 50_000 {
		t.Fatalf("wajib=%d pokok=%d", balances.saved.Wajib, balances.saved.Pokok)
	}
	if balances.saved.Total != 175_000 {
		t.Fatalf("total = %d, want 175000", balances.saved.Total)
	}
	if len(txns.created) != 1 {
		t.Fatalf("transactions created = %d", len(txns.created))
	}
}

func TestDeposit_PokokBucket(t *testing.T) {
	balances := &balanceRepoStub{balance: &domain.Balance{MemberID: memberID}}
	uc := newUsecase(balances, &txnRepoStub{})

	if _, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "pokok", Amount: 10_000}); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if balances.saved.Pokok != 10_000 || balances.saved.Total != 10_000 {
		t.Fatalf("pokok=%d total=%d", balances.saved.Pokok, balances.saved.Total)
	}
}

func TestDeposit_InvalidInput(t *testing.T) {
	uc := newUsecase(&balanceRepoStub{}, &txnRepoStub{})
	if _, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "sukarela", Amount: 10}); err != domain.ErrInvalidKind {
		t.Fatalf("kind err = %v", err)
	}
	if _, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "wajib", Amount: 0}); err == nil {
		t.Fatal("zero amount must fail")
	}
	if _, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "wajib", Amount: -5}); err == nil {
		t.Fatal("negative amount must fail")
	}
}

func TestDeposit_MissingBalance(t *testing.T) {
	uc := newUsecase(&balanceRepoStub{}, &txnRepoStub{})
	_, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "wajib", Amount: 10})
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		t.Fatalf("err = %v, want balance not found", err)
	}
}

func TestDeposit_TransactionInsertFailureLeavesBalanceUntouched(t *testing.T) {
	balances := &balanceRepoStub{balance: &domain.Balance{MemberID: memberID, Wajib: 100}}
	txns := &txnRepoStub{fail: errors.New("insert rejected")}
	uc := newUsecase(balances, txns)

	if _, err := uc.Deposit(context.Background(), DepositInput{MemberID: memberID, Kind: "wajib", Amount: 50}); err == nil {
		t.Fatal("want error")
	}
	if balances.saved != nil {
		t.Fatal("balance must not be saved when the transaction insert fails")
	}
}

func TestListTransactions_FiltersByMember(t *testing.T) {
	txns := &txnRepoStub{created: []domain.Transaction{
		{TransactionID: "t1", MemberID: memberID, Kind: domain.KindWajib, Amount: 10},
		{TransactionID: "t2", MemberID: "cccccccccccccccccccccccccccccccc", Kind: domain.KindPokok, Amount: 20},
	}}
	uc := newUsecase(&balanceRepoStub{}, txns)

	out, err := uc.ListTransactions(context.Background(), memberID)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(out) != 1 || out[0].TransactionID != "t1" {
		t.Fatalf("got %+v", out)
	}
}
