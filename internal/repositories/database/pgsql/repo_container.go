package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	sequenceRepo := newPgxOrderSequenceRepository(dbPool)

	userRepo := newPgxUserRepository(dbPool)
	branchRepo := newPgxBranchRepository(dbPool)
	staffRepo := newPgxStaffRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	transferOrderRepo := newPgxTransferOrderRepository(dbPool, sequenceRepo)
	balanceRepo := newPgxBalanceRepository(dbPool)
	payrollRepo := newPgxPayrollRepository(dbPool)
	bonusRepo := newPgxBonusRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:          userRepo,
		BranchRepo:        branchRepo,
		StaffRepo:         staffRepo,
		LeaveRepo:         leaveRepo,
		LoanRepo:          loanRepo,
		TransferOrderRepo: transferOrderRepo,
		BalanceRepo:       balanceRepo,
		PayrollRepo:       payrollRepo,
		BonusRepo:         bonusRepo,
	}
}
