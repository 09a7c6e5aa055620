package services

import (
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.User = NewUserService(repos.UserRepo, repos.BranchRepo)
	container.Branch = NewBranchService(repos.BranchRepo)
	container.Staff = NewStaffService(cfg, repos.StaffRepo, repos.BranchRepo)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.StaffRepo)
	container.Loan = NewLoanService(repos.LoanRepo, repos.StaffRepo)
	container.TransferOrder = NewTransferOrderService(repos.TransferOrderRepo, repos.StaffRepo, repos.BranchRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.StaffRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo)
	container.Bonus = NewBonusService(repos.BonusRepo, repos.BranchRepo)

	return container
}

// Compile-time interface checks for the service implementations
var (
	_ portssvc.AuthSvcFacade          = (*AuthService)(nil)
	_ portssvc.UserSvcFacade          = (*UserService)(nil)
	_ portssvc.BranchSvcFacade        = (*BranchService)(nil)
	_ portssvc.StaffSvcFacade         = (*StaffService)(nil)
	_ portssvc.LeaveSvcFacade         = (*LeaveService)(nil)
	_ portssvc.LoanSvcFacade          = (*LoanService)(nil)
	_ portssvc.TransferOrderSvcFacade = (*TransferOrderService)(nil)
	_ portssvc.BalanceSvcFacade       = (*BalanceService)(nil)
	_ portssvc.PayrollSvcFacade       = (*PayrollService)(nil)
	_ portssvc.BonusSvcFacade         = (*BonusService)(nil)
)
