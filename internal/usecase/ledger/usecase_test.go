package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	instDomain "koperasi-backend/internal/domain/installment"
	loanDomain "koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/internal/testutil/installmentmock"
	"koperasi-backend/internal/testutil/loanmock"
	"koperasi-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const (
	testLoanID   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testMemberID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

// harness is an in-memory loan store + installment ledger wired through
// the function-backed mocks, so ApplyPayment runs its full read-insert-
// update cycle without a database.
type harness struct {
	loans   map[string]*loanDomain.Loan
	entries []instDomain.Installment
	nextID  uint64
}

func newHarness(t *testing.T, loans ...*loanDomain.Loan) (*Usecase, *harness) {
	t.Helper()
	h := &harness{loans: map[string]*loanDomain.Loan{}, nextID: 1}
	for _, l := range loans {
		if l.ID == 0 {
			l.ID = h.nextID
			h.nextID++
		}
		h.loans[l.LoanID] = l
	}

	loanRepo := &loanmock.Repo{
		GetByLoanIDFn:          h.getLoan,
		GetByLoanIDForUpdateFn: h.getLoan,
		SaveFn: func(ctx context.Context, l *loanDomain.Loan) error {
			h.loans[l.LoanID] = l
			return nil
		},
	}
	instRepo := &installmentmock.Repo{
		CreateFn: func(ctx context.Context, i *instDomain.Installment) error {
			for _, e := range h.entries {
				if e.LoanID == i.LoanID && e.Sequence == i.Sequence {
					return instDomain.ErrDuplicateSequence
				}
			}
			h.entries = append(h.entries, *i)
			return nil
		},
		MaxSequenceFn: func(ctx context.Context, loanID uint64) (int, error) {
			maxSeq := 0
			for _, e := range h.entries {
				if e.LoanID == loanID && e.Sequence > maxSeq {
					maxSeq = e.Sequence
				}
			}
			return maxSeq, nil
		},
		ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]instDomain.Installment, error) {
			var out []instDomain.Installment
			for i := len(h.entries) - 1; i >= 0; i-- {
				if h.entries[i].LoanID == loanID {
					out = append(out, h.entries[i])
				}
			}
			return out, nil
		},
	}
	repos := uow.Repos{Loans: loanRepo, Installments: instRepo}
	return NewUsecase(loanRepo, instRepo, uowmock.Passthrough(repos)), h
}

func (h *harness) getLoan(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	l, ok := h.loans[loanID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func approvedLoan(total int64, tenor int) *loanDomain.Loan {
	due := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	return &loanDomain.Loan{
		LoanID:                testLoanID,
		MemberID:              testMemberID,
		Principal:             total * 5 / 6,
		TotalRepayable:        total,
		Tenor:                 tenor,
		Status:                loanDomain.StatusApproved,
		InstallmentsRemaining: tenor,
		NextDueDate:           &due,
		CreatedAt:             time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func wantValidation(t *testing.T, err error) {
	t.Helper()
	var f *Failure
	if !errors.As(err, &f) {
		t.Fatalf("want *Failure, got %v", err)
	}
	if f.Kind != KindValidation {
		t.Fatalf("kind = %s, want %s", f.Kind, KindValidation)
	}
}

// ----- recommendation arithmetic -----

func TestRecommendedInstallment_Formula(t *testing.T) {
	cases := []struct {
		name         string
		total, paid  int64
		tenor, count int
		want         int64
	}{
		{"fresh loan", 1_200_000, 0, 12, 0, 100_000},
		{"after one payment", 1_200_000, 100_000, 12, 1, 100_000},
		{"floor rounding", 1_000_000, 0, 3, 0, 333_333},
		{"last installment", 1_000_000, 999_999, 3, 2, 1},
		{"counter past tenor floors divisor at one", 500_000, 400_000, 3, 5, 100_000},
		{"fully paid", 1_200_000, 1_200_000, 12, 12, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := approvedLoan(tc.total, tc.tenor)
			l.AmountPaid = tc.paid
			l.InstallmentsPaid = tc.count
			got := RecommendedInstallment(l)
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
			if got < 0 {
				t.Fatalf("recommendation must be non-negative, got %d", got)
			}
		})
	}
}

func TestApplyPayment_RecommendedScheduleClearsWithinTenor(t *testing.T) {
	// Non-divisible total: floor drift accumulates but the final slot
	// (divisor 1) always absorbs the remainder.
	uc, h := newHarness(t, approvedLoan(1_000_000, 3))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		l := h.loans[testLoanID]
		if l.Status == loanDomain.StatusCompleted {
			break
		}
		if _, err := uc.ApplyPayment(ctx, testLoanID, PaymentOption{Mode: ModeRecommended}); err != nil {
			t.Fatalf("payment %d: %v", i+1, err)
		}
	}

	l := h.loans[testLoanID]
	if l.AmountPaid != 1_000_000 {
		t.Fatalf("paid = %d, want 1000000", l.AmountPaid)
	}
	if l.Status != loanDomain.StatusCompleted {
		t.Fatalf("status = %s, want completed", l.Status)
	}
	if len(h.entries) != 3 {
		t.Fatalf("ledger entries = %d, want 3", len(h.entries))
	}
}

// ----- validation rules -----

func TestValidatePayment_RejectsNonPositiveAmounts(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	for _, mode := range []PaymentMode{ModeRecommended, ModeCustom, ModePayRemaining} {
		for _, amount := range []int64{0, -1, -100_000} {
			if err := ValidatePayment(l, amount, mode); err == nil {
				t.Fatalf("mode=%s amount=%d: want error, got nil", mode, amount)
			}
		}
	}
}

func TestValidatePayment_RejectsOverpayment(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.AmountPaid = 1_150_000 // remaining 50,000
	for _, mode := range []PaymentMode{ModeRecommended, ModeCustom} {
		err := ValidatePayment(l, 50_001, mode)
		wantValidation(t, err)
	}
}

func TestValidatePayment_MinimumGuardOnlyWithoutOptIn(t *testing.T) {
	l := approvedLoan(1_200_000, 12) // recommended = 100,000

	// Below recommended without opting in: refused.
	wantValidation(t, ValidatePayment(l, 50_000, ModeRecommended))
	// Same amount as an explicit custom payment: allowed.
	if err := ValidatePayment(l, 50_000, ModeCustom); err != nil {
		t.Fatalf("custom 50000: %v", err)
	}
}

func TestValidatePayment_WrongStatus(t *testing.T) {
	for _, st := range []loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusRejected, loanDomain.StatusCompleted} {
		l := approvedLoan(1_200_000, 12)
		l.Status = st
		wantValidation(t, ValidatePayment(l, 100_000, ModeCustom))
	}
}

// ----- applying payments -----

func TestApplyPayment_TwelveMonthScenario(t *testing.T) {
	uc, h := newHarness(t, approvedLoan(1_200_000, 12))
	ctx := context.Background()

	rec, err := uc.Recommendation(ctx, testLoanID)
	if err != nil {
		t.Fatalf("Recommendation: %v", err)
	}
	if rec.Amount != 100_000 {
		t.Fatalf("recommendation = %d, want 100000", rec.Amount)
	}

	dto, err := uc.ApplyPayment(ctx, testLoanID, PaymentOption{Mode: ModeRecommended})
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if dto.AmountPaid != 100_000 || dto.InstallmentsPaid != 1 {
		t.Fatalf("after payment: paid=%d count=%d", dto.AmountPaid, dto.InstallmentsPaid)
	}
	if dto.InstallmentsRemaining != 11 {
		t.Fatalf("remaining installments = %d, want 11", dto.InstallmentsRemaining)
	}
	if got := RecommendedInstallment(h.loans[testLoanID]); got != 100_000 {
		t.Fatalf("next recommendation = %d, want 100000", got)
	}
}

func TestApplyPayment_FinalUnflaggedPaymentCompletesLoan(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.AmountPaid = 1_100_000
	l.InstallmentsPaid = 11
	l.InstallmentsRemaining = 1
	uc, h := newHarness(t, l)
	// Seed the ledger so the next sequence is 12.
	for i := 1; i <= 11; i++ {
		h.entries = append(h.entries, instDomain.Installment{LoanID: l.ID, Sequence: i, Amount: 100_000})
	}

	// 100,000 equals both recommendation and remaining; no flag needed.
	dto, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModeRecommended, Amount: 100_000})
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if dto.Status != string(loanDomain.StatusCompleted) {
		t.Fatalf("status = %s, want completed", dto.Status)
	}
	if dto.InstallmentsPaid != 12 || dto.Remaining != 0 {
		t.Fatalf("count=%d remaining=%d", dto.InstallmentsPaid, dto.Remaining)
	}

	// Terminal: no further payment may land.
	if _, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModeCustom, Amount: 1}); err == nil {
		t.Fatal("payment on a completed loan must fail")
	}
}

func TestApplyPayment_PayRemainingAlwaysClears(t *testing.T) {
	l := approvedLoan(1_000_000, 3)
	l.AmountPaid = 999_999 // sub-minimum remainder from rounding drift
	l.InstallmentsPaid = 2
	uc, h := newHarness(t, l)
	h.entries = append(h.entries,
		instDomain.Installment{LoanID: l.ID, Sequence: 1, Amount: 333_333},
		instDomain.Installment{LoanID: l.ID, Sequence: 2, Amount: 666_666},
	)

	dto, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModePayRemaining})
	if err != nil {
		t.Fatalf("pay remaining: %v", err)
	}
	if dto.Status != string(loanDomain.StatusCompleted) || dto.Remaining != 0 {
		t.Fatalf("status=%s remaining=%d", dto.Status, dto.Remaining)
	}
}

func TestApplyPayment_SequenceFromStoredLedgerNotCachedCounter(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.InstallmentsPaid = 2 // cached counter has drifted behind the ledger
	l.AmountPaid = 300_000
	uc, h := newHarness(t, l)
	for i := 1; i <= 3; i++ {
		h.entries = append(h.entries, instDomain.Installment{LoanID: l.ID, Sequence: i, Amount: 100_000})
	}

	dto, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModeCustom, Amount: 100_000})
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if dto.InstallmentsPaid != 4 {
		t.Fatalf("sequence = %d, want 4 (from ledger, not counter)", dto.InstallmentsPaid)
	}
}

func TestApplyPayment_DuplicateSequenceIsConflict(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	uc, h := newHarness(t, l)
	// Another session already wrote sequence 1 between our MaxSequence
	// read and the insert.
	h.entries = append(h.entries, instDomain.Installment{LoanID: l.ID, Sequence: 1, Amount: 100_000})
	maxSeqStale := func(ctx context.Context, loanID uint64) (int, error) { return 0, nil }
	uc.installments.(*installmentmock.Repo).MaxSequenceFn = maxSeqStale

	_, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModeRecommended})
	var f *Failure
	if !errors.As(err, &f) || f.Kind != KindSequenceConflict {
		t.Fatalf("want sequence conflict, got %v", err)
	}
	// Nothing persisted on top of the conflicting row.
	if len(h.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(h.entries))
	}
}

func TestApplyPayment_AdvancesDueDateByOneMonth(t *testing.T) {
	uc, h := newHarness(t, approvedLoan(1_200_000, 12))

	if _, err := uc.ApplyPayment(context.Background(), testLoanID, PaymentOption{Mode: ModeRecommended}); err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	got := h.loans[testLoanID].NextDueDate
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("due date = %v, want %v", got, want)
	}
}

func TestApplyPayment_UnknownLoan(t *testing.T) {
	uc, _ := newHarness(t)
	_, err := uc.ApplyPayment(context.Background(), "ffffffffffffffffffffffffffffffff", PaymentOption{Mode: ModeRecommended})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// ----- approve / reject -----

func TestApprove_SetsDueDateTenthOfFollowingMonth(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.Status = loanDomain.StatusPending
	l.NextDueDate = nil
	l.CreatedAt = time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)
	uc, h := newHarness(t, l)

	dto, err := uc.Approve(context.Background(), testLoanID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if dto.Status != string(loanDomain.StatusApproved) {
		t.Fatalf("status = %s", dto.Status)
	}
	want := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	if got := h.loans[testLoanID].NextDueDate; got == nil || !got.Equal(want) {
		t.Fatalf("due date = %v, want %v", got, want)
	}
}

func TestReject_TerminalAndFieldPreserving(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.Status = loanDomain.StatusPending
	l.NextDueDate = nil
	uc, h := newHarness(t, l)

	dto, err := uc.Reject(context.Background(), testLoanID)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if dto.Status != string(loanDomain.StatusRejected) {
		t.Fatalf("status = %s", dto.Status)
	}
	if h.loans[testLoanID].NextDueDate != nil {
		t.Fatal("reject must not set a due date")
	}

	// Terminal: neither decision applies twice.
	if _, err := uc.Approve(context.Background(), testLoanID); err == nil {
		t.Fatal("approve after reject must fail")
	}
}

func TestDecide_RequiresPendingStatus(t *testing.T) {
	for _, st := range []loanDomain.Status{loanDomain.StatusApproved, loanDomain.StatusRejected, loanDomain.StatusCompleted} {
		l := approvedLoan(1_200_000, 12)
		l.Status = st
		uc, _ := newHarness(t, l)
		_, err := uc.Approve(context.Background(), testLoanID)
		wantValidation(t, err)
	}
}

// ----- reads -----

func TestInstallments_NewestFirst(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	uc, h := newHarness(t, l)
	for i := 1; i <= 3; i++ {
		h.entries = append(h.entries, instDomain.Installment{LoanID: l.ID, LoanPublicID: l.LoanID, Sequence: i, Amount: 100_000})
	}

	out, err := uc.Installments(context.Background(), testLoanID)
	if err != nil {
		t.Fatalf("Installments: %v", err)
	}
	if len(out) != 3 || out[0].Sequence != 3 {
		t.Fatalf("got %d entries, first seq %d", len(out), out[0].Sequence)
	}
}

func TestRecommendation_RequiresApprovedLoan(t *testing.T) {
	l := approvedLoan(1_200_000, 12)
	l.Status = loanDomain.StatusPending
	uc, _ := newHarness(t, l)
	_, err := uc.Recommendation(context.Background(), testLoanID)
	wantValidation(t, err)
}
