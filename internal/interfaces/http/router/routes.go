package router

import (
	"github.com/assetledger/backend/internal/interfaces/http/handler"
)

// Handlers bundles the handlers mounted by LedgerGroups
type Handlers struct {
	System      *handler.SystemHandler
	Membership  *handler.MembershipHandler
	Fees        *handler.FeeHandler
	Investments *handler.InvestmentHandler
	Payments    *handler.PaymentHandler
	Profits     *handler.ProfitHandler
	Invoices    *handler.InvoiceHandler
	Sweeps      *handler.SweepHandler
}

// LedgerGroups builds the route groups of the ledger API
func LedgerGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo).
		GET("/ping", h.System.Ping)

	identifiers := NewDomainGroup("identifiers", "/identifiers").
		POST("", h.Membership.AllocateIdentifier)

	members := NewDomainGroup("members", "/members").
		POST("", h.Membership.RegisterMember).
		GET("", h.Membership.ListMembers).
		GET("/:id", h.Membership.GetMember).
		POST("/:id/activate", h.Membership.ActivateMember).
		POST("/:id/disable", h.Membership.DisableMember).
		GET("/:id/fee-records", h.Fees.ListByMember).
		GET("/:id/profits", h.Profits.ListByMember)

	companies := NewDomainGroup("companies", "/companies").
		POST("", h.Membership.RegisterCompany).
		GET("", h.Membership.ListCompanies).
		GET("/:id", h.Membership.GetCompany).
		GET("/:id/investments", h.Investments.ListByCompany)

	feeSettings := NewDomainGroup("fee-settings", "/fee-settings").
		POST("", h.Fees.CreateSetting).
		GET("", h.Fees.ListSettings)

	feeRecords := NewDomainGroup("fee-records", "/fee-records").
		POST("", h.Fees.CreateRecord).
		GET("/:id", h.Fees.GetRecord).
		POST("/:id/pay", h.Fees.Pay).
		POST("/:id/cancel", h.Fees.Cancel)

	investments := NewDomainGroup("investments", "/investments").
		POST("", h.Investments.Create).
		GET("/:id", h.Investments.GetByID).
		DELETE("/:id", h.Investments.Delete).
		POST("/:id/activate", h.Investments.Activate).
		POST("/:id/status", h.Investments.ChangeStatus).
		POST("/:id/leases", h.Investments.CreateLease).
		GET("/:id/leases", h.Investments.ListLeases).
		POST("/:id/payments", h.Payments.Schedule).
		GET("/:id/payments", h.Payments.ListByInvestment).
		POST("/:id/payments/range", h.Payments.ScheduleRange).
		GET("/:id/payments/summary", h.Payments.Summary).
		POST("/:id/standards", h.Profits.AddStandard).
		GET("/:id/standards", h.Profits.ListStandards)

	leases := NewDomainGroup("leases", "/leases").
		POST("/:id/terminate", h.Investments.TerminateLease)

	payments := NewDomainGroup("payments", "/payments").
		GET("/:id", h.Payments.GetByID).
		POST("/:id/record", h.Payments.Record).
		POST("/:id/cancel", h.Payments.Cancel).
		POST("/:id/profits", h.Profits.Distribute).
		GET("/:id/profits", h.Profits.ListByPayment).
		POST("/:id/invoice", h.Invoices.Issue).
		GET("/:id/invoice", h.Invoices.GetByPayment)

	profits := NewDomainGroup("profits", "/profits").
		POST("/:id/pay", h.Profits.MarkPaid)

	invoices := NewDomainGroup("invoices", "/invoices").
		GET("/:id", h.Invoices.GetByID).
		GET("/:id/render", h.Invoices.Render).
		POST("/:id/print", h.Invoices.Print).
		POST("/:id/void", h.Invoices.Void)

	sweeps := NewDomainGroup("sweeps", "/sweeps").
		POST("/run", h.Sweeps.Run)

	return []*DomainGroup{
		system, identifiers, members, companies, feeSettings, feeRecords,
		investments, leases, payments, profits, invoices, sweeps,
	}
}

// RegisterLedger mounts every ledger group on r
func (r *Router) RegisterLedger(h Handlers) []*DomainGroup {
	groups := LedgerGroups(h)
	for _, g := range groups {
		r.Register(g)
	}
	return groups
}
