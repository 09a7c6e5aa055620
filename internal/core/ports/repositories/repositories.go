package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	BranchRepo        BranchRepositoryFacade
	StaffRepo         StaffRepositoryFacade
	LeaveRepo         LeaveRepositoryFacade
	LoanRepo          LoanRepositoryFacade
	TransferOrderRepo TransferOrderRepositoryFacade
	BalanceRepo       BalanceRepositoryFacade
	PayrollRepo       PayrollRepositoryFacade
	BonusRepo         BonusRepositoryFacade
}
